// Package chain talks to the authoritative on-chain registry. Reads fail
// closed: any transport or shape problem surfaces as "data unavailable"
// rather than an error, and callers fall back to the local snapshot.
// Writes (check-in, mint) go through Submitter and are signed externally.
package chain

import "context"

// Fields are the authoritative values the registry can supply for a
// principal. Shields and TokenBalance are optional in the wire tuple, so
// presence is tracked with pointers; the three monotone fields default to
// zero when the contract has no entry yet.
type Fields struct {
	CurrentStreak  int64
	BestStreak     int64
	LastCheckInDay int64
	Shields        *int64
	TokenBalance   *int64
}

// Client performs the read-only registry query. FetchAuthoritative returns
// nil when the data is unavailable for any reason; it never mutates state.
type Client interface {
	FetchAuthoritative(ctx context.Context, principal string) *Fields
}
