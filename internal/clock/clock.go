// Package clock provides helpers for time-related operations.
package clock

import "time"

// Clock supplies the current time. The tracker takes it as a dependency so
// tests can drive claim timestamps deterministically.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock.
type System struct{}

// Now returns the current wall-clock time.
func (System) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant. Intended for tests.
type Fixed struct {
	Instant time.Time
}

// Now returns the fixed instant.
func (f Fixed) Now() time.Time {
	return f.Instant
}
