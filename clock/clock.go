// Package clock provides a time abstraction interface for testability and
// custom time implementations. The default implementation uses system time.
package clock

import (
	"time"
)

// realClock implements Clock using system time functions.
type realClock struct{}

// New creates a Clock instance using the host system's time.
func New() Clock {
	return &realClock{}
}

// Now implements Clock interface for realClock.
func (c *realClock) Now() time.Time {
	return time.Now()
}

// Since implements Clock interface for realClock.
func (c *realClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}
