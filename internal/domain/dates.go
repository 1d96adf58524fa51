package domain

import "time"

// DateOnly truncates t to midnight UTC, discarding the time of day.
// Due dates and "today" parameters are always handled at day precision.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from a to b.
// Negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}

// DatePtr returns a pointer to the date-only form of t. Fixture helper.
func DatePtr(t time.Time) *time.Time {
	d := DateOnly(t)
	return &d
}
