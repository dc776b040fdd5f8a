package chain

import (
	"context"
	"sync"
)

// StaticClient serves registry reads from a fixed in-memory table. Used by
// unit tests and as the dev fallback when no node URL is configured.
type StaticClient struct {
	mu     sync.RWMutex
	fields map[string]Fields
}

// NewStaticClient creates an empty static registry.
func NewStaticClient() *StaticClient {
	return &StaticClient{fields: make(map[string]Fields)}
}

// Set installs the authoritative fields returned for principal.
func (c *StaticClient) Set(principal string, f Fields) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields[principal] = f
}

// FetchAuthoritative returns the stored fields, or nil for unknown
// principals (mirroring an unavailable remote).
func (c *StaticClient) FetchAuthoritative(_ context.Context, principal string) *Fields {
	c.mu.RLock()
	defer c.mu.RUnlock()
	f, ok := c.fields[principal]
	if !ok {
		return nil
	}
	out := f
	if f.Shields != nil {
		v := *f.Shields
		out.Shields = &v
	}
	if f.TokenBalance != nil {
		v := *f.TokenBalance
		out.TokenBalance = &v
	}
	return &out
}

// Int64 is a convenience for building optional tuple fields in tests.
func Int64(v int64) *int64 {
	return &v
}
