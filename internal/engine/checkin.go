package engine

import (
	"fmt"
	"time"

	"github.com/tieubochet/stackstreak/internal/record"
)

const (
	// BaseReward is the flat points grant for any successful check-in.
	BaseReward int64 = 10
	// StreakMultiplier scales the grant by the new streak length.
	StreakMultiplier int64 = 2
)

// Reward computes the points granted for reaching the given streak length.
func Reward(streak int64) int64 {
	return BaseReward + streak*StreakMultiplier
}

// ProcessCheckIn applies one check-in attempt to a merged record and returns
// the next record plus the granted reward. The input record is not mutated.
//
// Callers invoke this only after the external check-in transaction reported
// success; on external failure or cancellation nothing is processed. A gap
// of more than one day consumes a shield when available, otherwise the
// streak resets to 1. lastCheckInDay == 0 means the principal has never
// checked in.
func ProcessCheckIn(rec record.UserRecord, today int64, now time.Time) (record.UserRecord, int64, error) {
	if today <= rec.LastCheckInDay {
		return record.UserRecord{}, 0, fmt.Errorf("%w: day %d", ErrAlreadyCheckedIn, today)
	}

	next := rec.Clone()
	gap := today - rec.LastCheckInDay

	switch {
	case rec.LastCheckInDay == 0 || gap == 1:
		next.CurrentStreak = rec.CurrentStreak + 1
	case rec.Shields > 0:
		// Shield converts the missed day into a continuation.
		next.Shields = rec.Shields - 1
		next.CurrentStreak = rec.CurrentStreak + 1
	default:
		next.CurrentStreak = 1
	}

	reward := Reward(next.CurrentStreak)

	next.BestStreak = max(rec.BestStreak, next.CurrentStreak)
	next.MarkDay(today)
	next.Points = rec.Points + reward
	next.LastCheckInDay = today
	next.LastCheckInAt = now.UnixMilli()

	if err := check(rec, next); err != nil {
		return record.UserRecord{}, 0, err
	}
	return next, reward, nil
}

// check guards the monotonicity invariants before the result is allowed to
// escape toward a store.
func check(prev, next record.UserRecord) error {
	switch {
	case next.CurrentStreak <= 0:
		return fmt.Errorf("%w: current streak %d", ErrInvariant, next.CurrentStreak)
	case next.BestStreak < next.CurrentStreak:
		return fmt.Errorf("%w: best streak %d below current %d", ErrInvariant, next.BestStreak, next.CurrentStreak)
	case next.Shields < 0:
		return fmt.Errorf("%w: shields %d", ErrInvariant, next.Shields)
	case next.Points < prev.Points:
		return fmt.Errorf("%w: points regressed %d -> %d", ErrInvariant, prev.Points, next.Points)
	case next.LastCheckInDay < prev.LastCheckInDay:
		return fmt.Errorf("%w: last day regressed %d -> %d", ErrInvariant, prev.LastCheckInDay, next.LastCheckInDay)
	}
	return nil
}
