package record

import (
	"context"
	"testing"
)

func TestMemoryStoreLoadMissingReturnsZeroRecord(t *testing.T) {
	store := NewMemoryStore()
	rec, err := store.Load(context.Background(), "SP000")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rec.Address != "SP000" {
		t.Fatalf("expected address set on zero record, got %q", rec.Address)
	}
	if rec.CurrentStreak != 0 || rec.Points != 0 || len(rec.CheckInDays) != 0 {
		t.Fatalf("expected zero defaults, got %+v", rec)
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	rec := New("SP111")
	rec.CurrentStreak = 3
	rec.BestStreak = 5
	rec.CheckInDays = []int64{100, 101, 102}

	if err := store.Save(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Load(ctx, "SP111")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.BestStreak != 5 || len(loaded.CheckInDays) != 3 {
		t.Fatalf("unexpected record: %+v", loaded)
	}

	// Mutating the loaded copy must not leak back into the store.
	loaded.CheckInDays[0] = 999
	again, _ := store.Load(ctx, "SP111")
	if again.CheckInDays[0] != 100 {
		t.Fatalf("store leaked a shared slice: %+v", again.CheckInDays)
	}
}

func TestMarkDayKeepsSetSortedAndUnique(t *testing.T) {
	rec := New("SP222")
	for _, d := range []int64{5, 3, 5, 9, 3, 4} {
		rec.MarkDay(d)
	}
	want := []int64{3, 4, 5, 9}
	if len(rec.CheckInDays) != len(want) {
		t.Fatalf("expected %v, got %v", want, rec.CheckInDays)
	}
	for i, d := range want {
		if rec.CheckInDays[i] != d {
			t.Fatalf("expected %v, got %v", want, rec.CheckInDays)
		}
	}
	if !rec.HasCheckedIn(4) || rec.HasCheckedIn(6) {
		t.Fatalf("membership check wrong for %v", rec.CheckInDays)
	}
}
