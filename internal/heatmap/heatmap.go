// Package heatmap projects a record's check-in history onto a fixed-length
// activity window for display. Pure and stateless.
package heatmap

// Cell is one day slot in the window.
type Cell struct {
	DayIndex int64 `json:"day_index"`
	Active   bool  `json:"active"`
}

// DefaultWindowDays is the window the dashboard shows.
const DefaultWindowDays = 30

// Project maps the check-in day set onto the windowDays ending at today,
// oldest first. windowDays <= 0 uses the default window.
func Project(days []int64, windowDays int, today int64) []Cell {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	set := make(map[int64]struct{}, len(days))
	for _, d := range days {
		set[d] = struct{}{}
	}

	cells := make([]Cell, windowDays)
	start := today - int64(windowDays) + 1
	for i := range cells {
		day := start + int64(i)
		_, active := set[day]
		cells[i] = Cell{DayIndex: day, Active: active}
	}
	return cells
}
