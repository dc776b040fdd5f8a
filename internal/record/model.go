package record

// UserRecord is the on-device snapshot of a principal's streak progress.
// The address is the identity key and never changes; everything else is
// mutated only by the reconciliation merge and the check-in transition.
// Timestamps are Unix milliseconds so the persisted layout is all plain
// integers.
type UserRecord struct {
	Address        string  `json:"address"`
	CurrentStreak  int64   `json:"current_streak"`
	BestStreak     int64   `json:"best_streak"`
	LastCheckInDay int64   `json:"last_check_in_day"`
	LastCheckInAt  int64   `json:"last_check_in_at"`
	Points         int64   `json:"points"`
	CheckInDays    []int64 `json:"check_in_days"`
	Shields        int64   `json:"shields"`
	LastMintDay    int64   `json:"last_mint_day"`
	TokenBalance   int64   `json:"token_balance"`
}

// New returns the zero-default record for an address seen for the first time.
func New(address string) UserRecord {
	return UserRecord{Address: address}
}

// Clone returns a deep copy; CheckInDays is the only reference field.
func (r UserRecord) Clone() UserRecord {
	out := r
	if r.CheckInDays != nil {
		out.CheckInDays = make([]int64, len(r.CheckInDays))
		copy(out.CheckInDays, r.CheckInDays)
	}
	return out
}

// HasCheckedIn reports whether day is in the check-in set.
func (r UserRecord) HasCheckedIn(day int64) bool {
	for _, d := range r.CheckInDays {
		if d == day {
			return true
		}
	}
	return false
}

// MarkDay adds day to the check-in set, keeping it sorted and unique.
// Adding a day that is already present is a no-op.
func (r *UserRecord) MarkDay(day int64) {
	i := 0
	for i < len(r.CheckInDays) && r.CheckInDays[i] < day {
		i++
	}
	if i < len(r.CheckInDays) && r.CheckInDays[i] == day {
		return
	}
	r.CheckInDays = append(r.CheckInDays, 0)
	copy(r.CheckInDays[i+1:], r.CheckInDays[i:])
	r.CheckInDays[i] = day
}
