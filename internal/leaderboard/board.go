// Package leaderboard maintains the derived best-streak ranking. It is a
// projection of committed records: append/update-only, recomputed (sorted)
// on every read.
package leaderboard

import (
	"context"
	"sort"
	"sync"

	"github.com/tieubochet/stackstreak/internal/notification"
)

// DefaultSize is the page size served when a caller asks for zero or fewer
// entries.
const DefaultSize = 20

// Entry is one ranked row. Rank is 1-based after a descending sort by best
// streak; ties keep first-seen insertion order.
type Entry struct {
	Rank       int    `json:"rank"`
	Address    string `json:"address"`
	BestStreak int64  `json:"best_streak"`
}

type row struct {
	address    string
	bestStreak int64
	seen       int // insertion order, tie breaker
}

// Board is the in-process leaderboard aggregator.
type Board struct {
	mu       sync.RWMutex
	rows     map[string]*row
	order    int
	notifier notification.Notifier
}

// New constructs an empty board. notifier may be nil.
func New(notifier notification.Notifier) *Board {
	return &Board{rows: make(map[string]*row), notifier: notifier}
}

// Upsert records a best streak for an address, keeping the max of the stored
// and offered values. It reports whether the table changed and publishes a
// change notification when it did.
func (b *Board) Upsert(ctx context.Context, address string, bestStreak int64) bool {
	b.mu.Lock()
	existing, ok := b.rows[address]
	changed := false
	switch {
	case !ok:
		b.rows[address] = &row{address: address, bestStreak: bestStreak, seen: b.order}
		b.order++
		changed = true
	case bestStreak > existing.bestStreak:
		existing.bestStreak = bestStreak
		changed = true
	}
	b.mu.Unlock()

	if changed && b.notifier != nil {
		_ = b.notifier.Notify(ctx, notification.Event{
			Kind:    notification.KindLeaderboardChanged,
			Subject: address,
		})
	}
	return changed
}

// TopN returns the highest-ranked entries, at most n. n <= 0 serves the
// default page size.
func (b *Board) TopN(n int) []Entry {
	if n <= 0 {
		n = DefaultSize
	}

	// Snapshot row values before unlocking: Upsert mutates rows in place
	// under the write lock, so sorting live pointers would race.
	b.mu.RLock()
	sorted := make([]row, 0, len(b.rows))
	for _, r := range b.rows {
		sorted = append(sorted, *r)
	}
	b.mu.RUnlock()

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].bestStreak != sorted[j].bestStreak {
			return sorted[i].bestStreak > sorted[j].bestStreak
		}
		return sorted[i].seen < sorted[j].seen
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}

	entries := make([]Entry, len(sorted))
	for i, r := range sorted {
		entries[i] = Entry{Rank: i + 1, Address: r.address, BestStreak: r.bestStreak}
	}
	return entries
}
