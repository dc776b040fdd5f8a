// Package streak orchestrates the check-in flow: reconcile the stored
// snapshot with the registry, run the day-boundary transition after the
// external transaction succeeds, and commit the result.
package streak

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/tieubochet/stackstreak/internal/chain"
	"github.com/tieubochet/stackstreak/internal/dayclock"
	"github.com/tieubochet/stackstreak/internal/engine"
	"github.com/tieubochet/stackstreak/internal/heatmap"
	"github.com/tieubochet/stackstreak/internal/leaderboard"
	"github.com/tieubochet/stackstreak/internal/record"
)

var (
	// ErrCheckInInFlight rejects a re-entrant check-in attempt while one is
	// already awaiting the external transaction.
	ErrCheckInInFlight = errors.New("check-in already in progress")

	// ErrMintNotAllowed rejects a mint outside the daily gate.
	ErrMintNotAllowed = errors.New("mint not allowed today")
)

// Service composes the record store, registry client, external submitter and
// leaderboard into the user-facing operations. All operations are safe for
// concurrent use; the per-address in-flight set serializes check-ins.
type Service struct {
	store     record.Store
	client    chain.Client
	submitter chain.Submitter
	board     *leaderboard.Board
	logger    *slog.Logger
	now       func() time.Time

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewService builds the orchestration service.
func NewService(store record.Store, client chain.Client, submitter chain.Submitter, board *leaderboard.Board, logger *slog.Logger) *Service {
	return &Service{
		store:     store,
		client:    client,
		submitter: submitter,
		board:     board,
		logger:    logger,
		now:       time.Now,
		inFlight:  make(map[string]struct{}),
	}
}

// Profile is the merged dashboard view for one principal.
type Profile struct {
	Record        record.UserRecord
	CanCheckIn    bool
	MintAllowed   bool
	NextCheckInAt time.Time
	Countdown     string
}

// CheckInResult carries the committed record and the granted reward.
type CheckInResult struct {
	Record record.UserRecord
	Reward int64
}

// Profile loads, reconciles and returns the current view for address. The
// merged record is persisted best-effort so later loads start from the
// reconciled state.
func (s *Service) Profile(ctx context.Context, address string) (Profile, error) {
	now := s.now()
	today := dayclock.Index(now)

	merged, err := s.reconcile(ctx, address, today)
	if err != nil {
		return Profile{}, err
	}

	if err := s.store.Save(ctx, merged); err != nil {
		// Recoverable: serve the in-memory record, next save retries.
		s.logger.Warn("persist merged record failed", "address", address, "error", err)
	}
	// The merge can raise the best streak from the registry; the ranking
	// follows every committed record, not just local check-ins. Principals
	// who never checked in anywhere stay off the board.
	if merged.BestStreak > 0 {
		s.board.Upsert(ctx, merged.Address, merged.BestStreak)
	}

	next := dayclock.NextCheckInAt(merged.LastCheckInDay)
	return Profile{
		Record:        merged,
		CanCheckIn:    merged.LastCheckInDay < today,
		MintAllowed:   engine.MintAllowed(merged, today),
		NextCheckInAt: next,
		Countdown:     dayclock.FormatCountdown(next.Sub(now)),
	}, nil
}

// CheckIn performs one check-in attempt for address. The external
// transaction is submitted before any state changes; a declined prompt
// surfaces as chain.ErrCancelled and leaves the record untouched.
func (s *Service) CheckIn(ctx context.Context, address string) (CheckInResult, error) {
	if !s.begin(address) {
		return CheckInResult{}, ErrCheckInInFlight
	}
	defer s.end(address)

	now := s.now()
	today := dayclock.Index(now)

	merged, err := s.reconcile(ctx, address, today)
	if err != nil {
		return CheckInResult{}, err
	}

	// Validate the day guard before spending an external transaction.
	if today <= merged.LastCheckInDay {
		return CheckInResult{}, fmt.Errorf("%w: day %d", engine.ErrAlreadyCheckedIn, today)
	}

	if err := s.submitter.SubmitCheckIn(ctx, address); err != nil {
		return CheckInResult{}, err
	}

	next, reward, err := engine.ProcessCheckIn(merged, today, now)
	if err != nil {
		return CheckInResult{}, err
	}

	if err := s.store.Save(ctx, next); err != nil {
		s.logger.Warn("persist check-in failed", "address", address, "error", err)
	}
	s.board.Upsert(ctx, next.Address, next.BestStreak)

	s.logger.Info("check-in committed",
		"address", address, "day", today, "streak", next.CurrentStreak, "reward", reward)
	return CheckInResult{Record: next, Reward: reward}, nil
}

// Mint performs the daily collectible mint for address when the gate allows
// it: checked in today and not yet minted today.
func (s *Service) Mint(ctx context.Context, address string) (record.UserRecord, error) {
	now := s.now()
	today := dayclock.Index(now)

	merged, err := s.reconcile(ctx, address, today)
	if err != nil {
		return record.UserRecord{}, err
	}

	if !engine.MintAllowed(merged, today) {
		return record.UserRecord{}, fmt.Errorf("%w: day %d", ErrMintNotAllowed, today)
	}

	if err := s.submitter.SubmitMint(ctx, address); err != nil {
		return record.UserRecord{}, err
	}

	next := engine.RecordMint(merged, today)
	if err := s.store.Save(ctx, next); err != nil {
		s.logger.Warn("persist mint failed", "address", address, "error", err)
	}
	return next, nil
}

// Heatmap projects the reconciled check-in history onto a display window.
func (s *Service) Heatmap(ctx context.Context, address string, windowDays int) ([]heatmap.Cell, error) {
	today := dayclock.Index(s.now())
	merged, err := s.reconcile(ctx, address, today)
	if err != nil {
		return nil, err
	}
	return heatmap.Project(merged.CheckInDays, windowDays, today), nil
}

// reconcile loads the snapshot and merges in the registry read. A nil
// registry response silently falls back to the snapshot.
func (s *Service) reconcile(ctx context.Context, address string, today int64) (record.UserRecord, error) {
	local, err := s.store.Load(ctx, address)
	if err != nil {
		return record.UserRecord{}, err
	}
	remote := s.client.FetchAuthoritative(ctx, address)
	return engine.Merge(local, remote, today), nil
}

func (s *Service) begin(address string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[address]; busy {
		return false
	}
	s.inFlight[address] = struct{}{}
	return true
}

func (s *Service) end(address string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, address)
}
