package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayWindowBounds(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	at := time.Date(2026, time.March, 14, 15, 9, 26, 0, loc)

	start, end := DayWindow(at)

	assert.Equal(t, time.Date(2026, time.March, 14, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, time.March, 15, 0, 0, 0, 0, loc), end)
	assert.Equal(t, loc, start.Location())
}

func TestDayWindowEndIsExclusive(t *testing.T) {
	at := time.Date(2026, time.January, 1, 23, 59, 59, 0, time.UTC)

	start, end := DayWindow(at)

	assert.True(t, at.After(start) || at.Equal(start))
	assert.True(t, at.Before(end))
	assert.False(t, end.Before(start))
	assert.Equal(t, 24*time.Hour, end.Sub(start))
}

func TestDayWindowAtMidnight(t *testing.T) {
	at := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)

	start, end := DayWindow(at)

	assert.Equal(t, at, start)
	assert.Equal(t, at.AddDate(0, 0, 1), end)
}
