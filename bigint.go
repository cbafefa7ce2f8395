package faker

import (
	"math/big"
)

// defaultBigIntSpan is the default distance between min and max, 10^15 - 1.
const defaultBigIntSpan = 999999999999999

// bigIntConfig holds the requested bounds. Nil means the bound was not
// supplied.
type bigIntConfig struct {
	min *big.Int
	max *big.Int
}

// BigIntOption configures a big integer draw.
type BigIntOption func(*bigIntConfig)

// WithBigIntMin sets the inclusive lower bound (default: 0).
func WithBigIntMin(min *big.Int) BigIntOption {
	return func(c *bigIntConfig) {
		c.min = min
	}
}

// WithBigIntMax sets the inclusive upper bound (default: min + 10^15 - 1).
func WithBigIntMax(max *big.Int) BigIntOption {
	return func(c *bigIntConfig) {
		c.max = max
	}
}

// BigInt generates an arbitrary-precision integer in [min, max]. The draw
// builds a decimal digit string as wide as the bound distance, one draw per
// digit, then folds it into the range modulo the distance.
// Args:
//   - opts: Bounds options
//
// Returns:
//   - *big.Int: Fresh value; bound arguments are never aliased or mutated
//   - error: *RangeError if max < min
//
// Notes:
//   - Equal bounds return a copy of min without consuming a draw
func (g *Generator) BigInt(opts ...BigIntOption) (*big.Int, error) {
	cfg := bigIntConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	min := cfg.min
	if min == nil {
		min = big.NewInt(0)
	}
	max := cfg.max
	if max == nil {
		max = new(big.Int).Add(min, big.NewInt(defaultBigIntSpan))
	}

	switch max.Cmp(min) {
	case 0:
		return new(big.Int).Set(min), nil
	case -1:
		return nil, &RangeError{Min: min, Max: max}
	}

	delta := new(big.Int).Sub(max, min)
	digits := g.Numeric(len(delta.String()), true)
	v, _ := new(big.Int).SetString(digits, 10)

	bound := new(big.Int).Add(delta, big.NewInt(1))
	v.Mod(v, bound)
	return v.Add(v, min), nil
}

// BigIntMax generates a big integer in [0, max]. It is the scalar shorthand
// for BigInt, where a bare value means the upper bound.
func (g *Generator) BigIntMax(max int64) (*big.Int, error) {
	return g.BigInt(WithBigIntMax(big.NewInt(max)))
}
