// Package engine holds the pure core: reconciling the local snapshot with
// the authoritative registry, and the day-boundary check-in transition.
// Nothing here performs I/O; callers own loading, submitting and saving.
package engine

import (
	"github.com/tieubochet/stackstreak/internal/chain"
	"github.com/tieubochet/stackstreak/internal/record"
)

// Merge reconciles the local snapshot with a registry read into one record.
// A nil remote means "authoritative data unavailable" and leaves the local
// record untouched.
//
// The monotone fields (current streak, best streak, last check-in day) take
// the max of both sources: a registry lagging behind a just-submitted local
// check-in must not regress displayed progress. The flip side is that a
// remote correction can never lower a locally inflated value. Shields and
// token balance are remote-authoritative when present. Everything else
// passes through from local.
func Merge(local record.UserRecord, remote *chain.Fields, today int64) record.UserRecord {
	out := local.Clone()
	if remote == nil {
		return out
	}

	out.CurrentStreak = max(local.CurrentStreak, remote.CurrentStreak)
	out.BestStreak = max(local.BestStreak, remote.BestStreak)
	out.LastCheckInDay = max(local.LastCheckInDay, remote.LastCheckInDay)
	if remote.Shields != nil {
		out.Shields = *remote.Shields
	}
	if remote.TokenBalance != nil {
		out.TokenBalance = *remote.TokenBalance
	}

	// A record reconstructed purely from the registry has a streak but no
	// local day set. Back-fill a contiguous run ending today so history
	// views have something to show; display only, no invariant depends on it.
	if out.CurrentStreak > 0 && len(out.CheckInDays) == 0 {
		for d := today - out.CurrentStreak + 1; d <= today; d++ {
			out.MarkDay(d)
		}
	}

	return out
}
