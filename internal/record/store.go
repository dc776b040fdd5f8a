package record

import (
	"context"
	"errors"
)

// ErrStorage indicates a persistence write or read failed at the
// infrastructure level. The in-memory record stays valid for the session
// and the next successful save carries the same payload, so callers log
// and continue rather than abort.
var ErrStorage = errors.New("record storage failure")

// Store persists one UserRecord per address. Load never fails for a missing
// record: it returns the zero-default record for the address. Read-modify-write
// is the caller's responsibility; concurrent writers across processes are
// last-writer-wins (known limitation, no version counter).
type Store interface {
	Load(ctx context.Context, address string) (UserRecord, error)
	Save(ctx context.Context, rec UserRecord) error
}
