package source

import (
	"math"
)

// Xorshift is a xorshift128 Source backend. It is cheaper than PCG but has
// 32-bit resolution, so draws over very wide ranges land on a coarser grid.
type Xorshift struct {
	x, y, z, w uint32
	seed       uint64
}

// NewXorshift creates a xorshift128 source from seed. The seed occupies the
// fourth state word; the first three start from fixed constants.
func NewXorshift(seed uint64) *Xorshift {
	return &Xorshift{
		x:    123456789,
		y:    362436069,
		z:    521288629,
		w:    uint32(seed),
		seed: seed,
	}
}

// Draw returns an integer uniformly distributed in [lower, upper).
func (s *Xorshift) Draw(upper, lower float64) int64 {
	return uniformToDraw(s.next(), upper, lower)
}

// Seed returns the seed the source was created with.
func (s *Xorshift) Seed() uint64 {
	return s.seed
}

// next returns the next variate in [0, 1). The exact value 1.0 is rejected
// and redrawn so the half-open interval holds.
func (s *Xorshift) next() float64 {
	t := s.x ^ (s.x << 11)
	s.x, s.y, s.z = s.y, s.z, s.w
	s.w = s.w ^ (s.w >> 19) ^ (t ^ (t >> 8))
	u := float64(math.MaxUint32-s.w) / float64(math.MaxUint32)
	if u == 1.0 {
		return s.next()
	}
	return u
}
