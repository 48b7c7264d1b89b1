// Package util holds small shared helpers with no domain dependencies.
package util

import "time"

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// DayWindow returns the half-open interval [startOfDay, startOfNextDay) that
// contains t, in t's location. Check-in uniqueness is defined over this
// window.
func DayWindow(t time.Time) (from, to time.Time) {
	from = StartOfDay(t)

	return from, from.AddDate(0, 0, 1)
}

// StartOfWeek returns midnight of the Monday of t's week in t's location.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	weekday := int(day.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}

	return day.AddDate(0, 0, -(weekday - 1))
}

// StartOfMonth returns midnight of the first day of t's month in t's location.
func StartOfMonth(t time.Time) time.Time {
	year, month, _ := t.Date()

	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}

// LocalDayKey renders t's calendar day as "2006-01-02" in t's location,
// used to key per-day cache entries.
func LocalDayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
