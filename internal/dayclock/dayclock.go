// Package dayclock converts wall-clock time into the integer day index that
// gates check-in eligibility. A day is a fixed 24h period counted from the
// Unix epoch, so the index is timezone independent.
package dayclock

import (
	"fmt"
	"time"
)

// DayMillis is the length of one check-in period in milliseconds.
const DayMillis int64 = 24 * 60 * 60 * 1000

// Index returns the day index containing t.
func Index(t time.Time) int64 {
	return t.UnixMilli() / DayMillis
}

// StartOf returns the instant a day index begins.
func StartOf(day int64) time.Time {
	return time.UnixMilli(day * DayMillis).UTC()
}

// NextCheckInAt returns the earliest instant a principal whose most recent
// check-in happened on lastDay may check in again.
func NextCheckInAt(lastDay int64) time.Time {
	return StartOf(lastDay + 1)
}

// FormatCountdown renders the remaining wait as HH:MM:SS, or "Ready" once
// the wait has elapsed.
func FormatCountdown(d time.Duration) string {
	if d <= 0 {
		return "Ready"
	}
	total := int64(d.Seconds())
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
