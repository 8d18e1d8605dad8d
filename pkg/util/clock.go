package util

import "time"

// Clock is the source of wall-clock readings for anything that stamps time.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant. Useful for deterministic tests and replays.
type FixedClock struct {
	At time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return c.At }

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}
