// Package source provides seedable uniform random sources for the synthesis
// layer. A Source yields one integer per draw and is deterministic for a
// given seed and draw ordinal. Sources are not safe for concurrent use;
// callers needing parallelism create one Source per goroutine.
package source

import (
	"errors"
	"fmt"
	"math"
)

// Source is the uniform draw contract consumed by the synthesis layer.
type Source interface {
	// Draw returns an integer uniformly distributed in [lower, upper),
	// advancing the stream by one step. The exclusive upper bound comes
	// first, matching the consumed contract.
	Draw(upper, lower float64) int64
}

// Algorithm names accepted by New.
const (
	AlgorithmPCG      = "pcg"
	AlgorithmXorshift = "xorshift"
)

// ErrUnknownAlgorithm is returned by New for an unrecognized algorithm name.
var ErrUnknownAlgorithm = errors.New("source: unknown algorithm")

// New creates a Source by algorithm name. An empty name selects the
// default PCG backend.
func New(algorithm string, seed uint64) (Source, error) {
	switch algorithm {
	case AlgorithmPCG, "":
		return NewPCG(seed), nil
	case AlgorithmXorshift:
		return NewXorshift(seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}

// uniformToDraw maps one uniform variate u in [0, 1) onto the integer
// range [lower, upper).
func uniformToDraw(u, upper, lower float64) int64 {
	return int64(math.Floor(u*(upper-lower) + lower))
}
