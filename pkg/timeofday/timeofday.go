// Package timeofday implements the fixed-date convention for storing
// time-of-day values in timestamp columns: the date portion is pinned to a
// constant that carries no meaning, and only the hour and minute do.
package timeofday

import "time"

// Fixed date components of every encoded time-of-day value.
const (
	FixedYear  = 1999
	FixedMonth = time.December
	FixedDay   = 30
)

// FixedDate is the pinned, meaningless date portion.
var FixedDate = time.Date(FixedYear, FixedMonth, FixedDay, 0, 0, 0, 0, time.UTC)

// Encode builds the storable timestamp for a time of day.
func Encode(hour, minute int) time.Time {
	return time.Date(FixedYear, FixedMonth, FixedDay, hour, minute, 0, 0, time.UTC)
}

// Decode extracts the hour and minute back out of an encoded timestamp.
// The date portion is ignored, so values encoded against a different fixed
// date still decode correctly.
func Decode(t time.Time) (hour, minute int) {
	return t.Hour(), t.Minute()
}

// Normalize re-pins a timestamp's date portion to the fixed date, keeping
// its hour and minute. Useful when a caller supplies a wall-clock time.
func Normalize(t time.Time) time.Time {
	return Encode(t.Hour(), t.Minute())
}
