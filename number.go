package faker

import (
	"fmt"
)

const (
	defaultNumberSpan      = 99999
	defaultNumberPrecision = 1
	defaultFloatPrecision  = 0.01
)

// RangeError reports a bounds pair where max is below min. Min and Max hold
// float64 for numeric and date draws and *big.Int for big integer draws.
type RangeError struct {
	Min, Max any
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("faker: max %v must be greater than or equal to min %v", e.Max, e.Min)
}

// PrecisionError reports a non-positive precision step.
type PrecisionError struct {
	Precision float64
}

func (e *PrecisionError) Error() string {
	return fmt.Sprintf("faker: precision %v must be positive", e.Precision)
}

// numberConfig is the resolved bounds triple for one numeric draw. maxSet
// distinguishes an explicit max from the min-relative default.
type numberConfig struct {
	min       float64
	max       float64
	maxSet    bool
	precision float64
}

// NumberOption configures a numeric draw.
type NumberOption func(*numberConfig)

// WithMin sets the inclusive lower bound (default: 0).
func WithMin(min float64) NumberOption {
	return func(c *numberConfig) {
		c.min = min
	}
}

// WithMax sets the inclusive upper bound (default: min + 99999).
func WithMax(max float64) NumberOption {
	return func(c *numberConfig) {
		c.max = max
		c.maxSet = true
	}
}

// WithPrecision sets the step between representable results (default: 1
// for Number, 0.01 for Float).
func WithPrecision(precision float64) NumberOption {
	return func(c *numberConfig) {
		c.precision = precision
	}
}

// Number generates a number in [min, max] on the precision grid, consuming
// one draw. Defaults produce an integer-valued result in [0, 99999].
// Args:
//   - opts: Bounds and precision options
//
// Returns:
//   - float64: Drawn value, a multiple of the precision step
//   - error: *RangeError if max < min, *PrecisionError if precision <= 0
//
// Notes:
//   - Equal bounds return min without consuming a draw
func (g *Generator) Number(opts ...NumberOption) (float64, error) {
	return g.number(defaultNumberPrecision, opts)
}

// Float generates a number the same way as Number with a default precision
// of 0.01, so unconfigured draws carry two decimal places.
func (g *Generator) Float(opts ...NumberOption) (float64, error) {
	return g.number(defaultFloatPrecision, opts)
}

// NumberMax generates a number in [0, max]. It is the scalar shorthand for
// Number, where a bare value means the upper bound.
func (g *Generator) NumberMax(max float64) (float64, error) {
	return g.Number(WithMax(max))
}

// FloatPrecision generates a float on the given precision grid over the
// default bounds. It is the scalar shorthand for Float, where a bare value
// means the precision step.
func (g *Generator) FloatPrecision(precision float64) (float64, error) {
	return g.Float(WithPrecision(precision))
}

// number resolves options against the given default precision and performs
// the draw. The single source step covers the whole scaled range, so draw
// counts stay identical across precisions.
func (g *Generator) number(precision float64, opts []NumberOption) (float64, error) {
	cfg := numberConfig{precision: precision}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.maxSet {
		cfg.max = cfg.min + defaultNumberSpan
	}

	if cfg.max == cfg.min {
		return cfg.min, nil
	}
	if cfg.max < cfg.min {
		return 0, &RangeError{Min: cfg.min, Max: cfg.max}
	}
	if cfg.precision <= 0 {
		return 0, &PrecisionError{Precision: cfg.precision}
	}

	n := g.src.Draw(cfg.max/cfg.precision+1, cfg.min/cfg.precision)
	return float64(n) * cfg.precision, nil
}
