package leaderboard

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/tieubochet/stackstreak/internal/notification"
)

type captureNotifier struct {
	events []notification.Event
}

func (n *captureNotifier) Notify(_ context.Context, event notification.Event) error {
	n.events = append(n.events, event)
	return nil
}

func TestUpsertKeepsMaxAndNotifies(t *testing.T) {
	notifier := &captureNotifier{}
	board := New(notifier)
	ctx := context.Background()

	if !board.Upsert(ctx, "SPA", 5) {
		t.Fatal("first upsert should change the table")
	}
	if !board.Upsert(ctx, "SPA", 8) {
		t.Fatal("higher streak should change the table")
	}
	if board.Upsert(ctx, "SPA", 3) {
		t.Fatal("lower streak must not regress the stored value")
	}

	top := board.TopN(10)
	if len(top) != 1 || top[0].BestStreak != 8 {
		t.Fatalf("expected single entry at 8, got %+v", top)
	}
	if len(notifier.events) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(notifier.events))
	}
	if notifier.events[0].Kind != notification.KindLeaderboardChanged {
		t.Fatalf("unexpected event kind %q", notifier.events[0].Kind)
	}
}

func TestTopNOrderingAndTies(t *testing.T) {
	board := New(nil)
	ctx := context.Background()

	board.Upsert(ctx, "SPA", 4)
	board.Upsert(ctx, "SPB", 9)
	board.Upsert(ctx, "SPC", 4) // tie with SPA, inserted later
	board.Upsert(ctx, "SPD", 7)

	top := board.TopN(10)
	wantOrder := []string{"SPB", "SPD", "SPA", "SPC"}
	if len(top) != len(wantOrder) {
		t.Fatalf("expected %d entries, got %d", len(wantOrder), len(top))
	}
	for i, addr := range wantOrder {
		if top[i].Address != addr {
			t.Fatalf("expected order %v, got %+v", wantOrder, top)
		}
		if top[i].Rank != i+1 {
			t.Fatalf("expected rank %d for %s, got %d", i+1, addr, top[i].Rank)
		}
	}
}

func TestTopNTruncatesAndDefaults(t *testing.T) {
	board := New(nil)
	ctx := context.Background()
	board.Upsert(ctx, "SPA", 3)
	board.Upsert(ctx, "SPB", 2)
	board.Upsert(ctx, "SPC", 1)

	if got := board.TopN(2); len(got) != 2 || got[0].Address != "SPA" {
		t.Fatalf("expected top 2 starting with SPA, got %+v", got)
	}
	if got := board.TopN(0); len(got) != 3 {
		t.Fatalf("expected default size to cover all 3 entries, got %d", len(got))
	}
}

func TestConcurrentUpsertAndTopN(t *testing.T) {
	board := New(nil)
	ctx := context.Background()

	const workers = 10
	const rounds = 100

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			addr := fmt.Sprintf("SP%d", i)
			for streak := int64(1); streak <= rounds; streak++ {
				board.Upsert(ctx, addr, streak)
			}
		}(i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < rounds; n++ {
				for _, e := range board.TopN(workers) {
					if e.BestStreak < 1 || e.BestStreak > rounds {
						t.Errorf("torn read: %+v", e)
					}
				}
			}
		}()
	}
	wg.Wait()

	top := board.TopN(workers)
	if len(top) != workers {
		t.Fatalf("expected %d entries, got %d", workers, len(top))
	}
	for _, e := range top {
		if e.BestStreak != rounds {
			t.Fatalf("expected every entry at %d, got %+v", rounds, e)
		}
	}
}

func TestRepeatedIdenticalUpsertIsStable(t *testing.T) {
	board := New(nil)
	ctx := context.Background()
	board.Upsert(ctx, "SPA", 6)
	board.Upsert(ctx, "SPB", 6)

	before := board.TopN(10)
	for i := 0; i < 5; i++ {
		if board.Upsert(ctx, "SPA", 6) {
			t.Fatal("identical upsert must not report a change")
		}
	}
	after := board.TopN(10)

	if len(before) != len(after) {
		t.Fatalf("entry count changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("ranking changed under identical upserts: %+v vs %+v", before, after)
		}
	}
}
