package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayWindow(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	at := time.Date(2024, 5, 17, 9, 30, 12, 0, loc)

	from, to := DayWindow(at)

	assert.Equal(t, time.Date(2024, 5, 17, 0, 0, 0, 0, loc), from)
	assert.Equal(t, time.Date(2024, 5, 18, 0, 0, 0, 0, loc), to)
}

func TestDayWindow_JustAfterMidnight(t *testing.T) {
	at := time.Date(2024, 5, 18, 0, 5, 0, 0, time.UTC)

	from, to := DayWindow(at)

	assert.Equal(t, time.Date(2024, 5, 18, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 5, 19, 0, 0, 0, 0, time.UTC), to)
}

func TestStartOfWeek(t *testing.T) {
	// 2024-05-17 is a Friday; the week starts Monday 2024-05-13.
	at := time.Date(2024, 5, 17, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC), StartOfWeek(at))

	// Sunday belongs to the week that started the previous Monday.
	sunday := time.Date(2024, 5, 19, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC), StartOfWeek(sunday))
}

func TestStartOfMonth(t *testing.T) {
	at := time.Date(2024, 5, 17, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), StartOfMonth(at))
}

func TestLocalDayKey(t *testing.T) {
	at := time.Date(2024, 5, 7, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, "2024-05-07", LocalDayKey(at))
}
