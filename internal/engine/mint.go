package engine

import "github.com/tieubochet/stackstreak/internal/record"

// MintAllowed reports whether the principal may mint the daily collectible:
// at most one mint per day index, and only on a day they checked in.
func MintAllowed(rec record.UserRecord, today int64) bool {
	return rec.LastMintDay != today && rec.HasCheckedIn(today)
}

// RecordMint commits a successful external mint for today. The input record
// is not mutated.
func RecordMint(rec record.UserRecord, today int64) record.UserRecord {
	next := rec.Clone()
	next.LastMintDay = today
	return next
}
