package faker

import (
	"time"
)

const (
	// Default window, 1990-01-01T00:00:00Z to 2100-01-01T00:00:00Z in epoch
	// milliseconds.
	defaultDateMinMillis = 631152000000
	defaultDateMaxMillis = 4102444800000

	// maxDateMillis is the largest representable offset from the epoch,
	// 100 million days in milliseconds. Bounds beyond it fall back to the
	// defaults rather than failing.
	maxDateMillis = 8640000000000000
)

// dateConfig holds the requested window. Zero times mean the bound was not
// supplied.
type dateConfig struct {
	from  time.Time
	until time.Time
}

// DateOption configures a date draw.
type DateOption func(*dateConfig)

// WithFrom sets the inclusive start of the window (default: 1990-01-01 UTC).
// A zero time means unset.
func WithFrom(t time.Time) DateOption {
	return func(c *dateConfig) {
		c.from = t
	}
}

// WithUntil sets the inclusive end of the window (default: 2100-01-01 UTC).
// A zero time means unset.
func WithUntil(t time.Time) DateOption {
	return func(c *dateConfig) {
		c.until = t
	}
}

// Date generates an instant inside the window, consuming one draw. The
// window is resolved to epoch milliseconds and handed to the numeric core,
// so date sequences line up with numeric sequences drawn over the same
// bounds.
// Args:
//   - opts: Window options
//
// Returns:
//   - time.Time: Drawn instant in UTC with millisecond resolution
//   - error: *RangeError if the resolved window ends before it starts
//
// Notes:
//   - Bounds outside the representable range fall back to the defaults
//   - Equal bounds return the instant without consuming a draw
func (g *Generator) Date(opts ...DateOption) (time.Time, error) {
	cfg := dateConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	min := float64(defaultDateMinMillis)
	if !cfg.from.IsZero() {
		if ms := cfg.from.UnixMilli(); ms >= -maxDateMillis {
			min = float64(ms)
		}
	}

	max := float64(defaultDateMaxMillis)
	if !cfg.until.IsZero() {
		if ms := cfg.until.UnixMilli(); ms <= maxDateMillis {
			max = float64(ms)
		}
	}

	n, err := g.Number(WithMin(min), WithMax(max))
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(int64(n)).UTC(), nil
}
