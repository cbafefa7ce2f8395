package source

import (
	"math/rand/v2"
)

// PCG is the default Source backend. It wraps the standard PCG generator
// seeded with the same value in both state words, so the full sequence is
// reproducible from a single uint64.
type PCG struct {
	r    *rand.Rand
	seed uint64
}

// NewPCG creates a PCG source from seed.
func NewPCG(seed uint64) *PCG {
	return &PCG{
		r:    rand.New(rand.NewPCG(seed, seed)),
		seed: seed,
	}
}

// Draw returns an integer uniformly distributed in [lower, upper).
func (p *PCG) Draw(upper, lower float64) int64 {
	return uniformToDraw(p.r.Float64(), upper, lower)
}

// Seed returns the seed the source was created with.
func (p *PCG) Seed() uint64 {
	return p.seed
}
