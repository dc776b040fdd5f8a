package engine

import "errors"

var (
	// ErrAlreadyCheckedIn occurs when a check-in is attempted for a day index
	// at or before the record's last check-in. User-correctable: wait for the
	// next day to open.
	ErrAlreadyCheckedIn = errors.New("already checked in today")

	// ErrInvariant signals an internally inconsistent transition result, a
	// programming defect. The operation must abort rather than persist a
	// corrupted record.
	ErrInvariant = errors.New("streak invariant violated")
)
