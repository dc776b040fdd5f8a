package chain

import (
	"context"
	"errors"
	"log/slog"
)

// ErrCancelled indicates the user declined the wallet signing prompt. No
// state changes and the operation is not retried automatically.
var ErrCancelled = errors.New("transaction cancelled by user")

const (
	// TxCheckIn is the state-changing contract call recording a daily check-in.
	TxCheckIn = "check-in"
	// TxMint is the collectible mint call gated by the daily mint rule.
	TxMint = "mint-daily-nft"
)

// Submitter hands a state-changing call to the external wallet/signing
// collaborator and reports its outcome. Success means the transaction was
// accepted, which is the precondition for running the check-in transition.
type Submitter interface {
	SubmitCheckIn(ctx context.Context, principal string) error
	SubmitMint(ctx context.Context, principal string) error
}

// LoggerSubmitter is a stub submitter that records the call and succeeds.
// It stands in for the wallet prompt in development.
type LoggerSubmitter struct {
	logger *slog.Logger
}

// NewLoggerSubmitter constructs the logging stub.
func NewLoggerSubmitter(logger *slog.Logger) *LoggerSubmitter {
	return &LoggerSubmitter{logger: logger}
}

// SubmitCheckIn logs the check-in call.
func (s *LoggerSubmitter) SubmitCheckIn(_ context.Context, principal string) error {
	s.log(TxCheckIn, principal)
	return nil
}

// SubmitMint logs the mint call.
func (s *LoggerSubmitter) SubmitMint(_ context.Context, principal string) error {
	s.log(TxMint, principal)
	return nil
}

func (s *LoggerSubmitter) log(function, principal string) {
	if s == nil || s.logger == nil {
		return
	}
	s.logger.Info("transaction submitted", "function", function, "principal", principal)
}
