package clock

import (
	"time"
)

// fixedClock implements Clock pinned to a single instant.
type fixedClock struct {
	at time.Time
}

// NewFixed creates a Clock frozen at the given instant. Deterministic
// pipelines use it so time-derived output is reproducible.
func NewFixed(at time.Time) Clock {
	return &fixedClock{at: at}
}

// Now implements Clock interface for fixedClock.
func (c *fixedClock) Now() time.Time {
	return c.at
}

// Since implements Clock interface for fixedClock.
func (c *fixedClock) Since(t time.Time) time.Duration {
	return c.at.Sub(t)
}
