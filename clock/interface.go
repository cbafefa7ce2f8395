package clock

import "time"

// Clock defines the time operations the synthesis layer depends on,
// allowing substitution of real time with fixed clocks for testing.
type Clock interface {
	// Now returns current time according to the clock's time source.
	Now() time.Time

	// Since calculates duration elapsed since time t.
	Since(t time.Time) time.Duration
}
