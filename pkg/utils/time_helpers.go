package utils

import "time"

// DayWindow returns the local midnight-to-midnight bounds for the day
// containing t. The end bound is exclusive.
func DayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
