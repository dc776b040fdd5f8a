package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const readFunction = "get-user"

// HTTPClient queries a node's read-only function endpoint. Outbound calls
// use net/http directly; there is no server involved on this side.
type HTTPClient struct {
	baseURL  string
	contract string
	http     *http.Client
	logger   *slog.Logger
}

// NewHTTPClient builds a registry client for the given node URL and contract
// identifier (address.name).
func NewHTTPClient(baseURL, contract string, logger *slog.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:  baseURL,
		contract: contract,
		http:     &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
	}
}

type readRequest struct {
	FunctionName string   `json:"functionName"`
	Arguments    []string `json:"arguments"`
}

// readResponse mirrors the contract's user tuple. The three streak fields
// are required; pointers distinguish absent from zero.
type readResponse struct {
	Streak     *uint64 `json:"streak"`
	BestStreak *uint64 `json:"best-streak"`
	LastDay    *uint64 `json:"last-day"`
	Shields    *uint64 `json:"shields"`
	Balance    *uint64 `json:"balance"`
}

// FetchAuthoritative queries the registry for principal. Any failure is
// logged at debug level and reported as nil.
func (c *HTTPClient) FetchAuthoritative(ctx context.Context, principal string) *Fields {
	body, err := json.Marshal(readRequest{FunctionName: readFunction, Arguments: []string{principal}})
	if err != nil {
		return nil
	}

	url := fmt.Sprintf("%s/v2/contracts/call-read/%s/%s", c.baseURL, c.contract, readFunction)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.unavailable(principal, err)
		return nil
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.unavailable(principal, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.unavailable(principal, fmt.Errorf("status %d", resp.StatusCode))
		return nil
	}

	var decoded readResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		c.unavailable(principal, err)
		return nil
	}
	if decoded.Streak == nil || decoded.BestStreak == nil || decoded.LastDay == nil {
		c.unavailable(principal, fmt.Errorf("incomplete tuple"))
		return nil
	}

	fields := &Fields{
		CurrentStreak:  int64(*decoded.Streak),
		BestStreak:     int64(*decoded.BestStreak),
		LastCheckInDay: int64(*decoded.LastDay),
	}
	if decoded.Shields != nil {
		v := int64(*decoded.Shields)
		fields.Shields = &v
	}
	if decoded.Balance != nil {
		v := int64(*decoded.Balance)
		fields.TokenBalance = &v
	}
	return fields
}

func (c *HTTPClient) unavailable(principal string, err error) {
	if c.logger != nil {
		c.logger.Debug("registry read unavailable", "principal", principal, "error", err)
	}
}
