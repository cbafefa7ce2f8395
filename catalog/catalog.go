// Package catalog provides deterministic selection over caller-supplied
// values: single picks, weighted picks, shuffles and samples. All draws go
// through a Generator, so selections replay exactly under a fixed seed.
package catalog

import (
	"errors"

	"golang.org/x/exp/constraints"

	"github.com/Evavic44/faker"
)

var (
	// ErrNoItems is returned when a selection is requested from an empty
	// slice.
	ErrNoItems = errors.New("catalog: no items")

	// ErrWeightMismatch is returned when weights and items differ in length.
	ErrWeightMismatch = errors.New("catalog: items and weights length mismatch")

	// ErrZeroWeight is returned when the weights sum to zero or less.
	ErrZeroWeight = errors.New("catalog: total weight must be positive")
)

// weightedResolution is the relative step of the threshold draw in
// PickWeighted, 2^-20 of the total weight.
const weightedResolution = 1 << 20

// Pick selects one element uniformly, consuming one draw. A single-element
// slice returns that element without consuming a draw.
func Pick[T any](g *faker.Generator, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrNoItems
	}

	idx, err := g.NumberMax(float64(len(items) - 1))
	if err != nil {
		return zero, err
	}
	return items[int(idx)], nil
}

// PickWeighted selects one element with probability proportional to its
// weight, consuming one draw. The threshold draw runs on a grid of 2^20
// steps across the weight total, so ties between replays are exact.
func PickWeighted[T any, W constraints.Integer | constraints.Float](g *faker.Generator, items []T, weights []W) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrNoItems
	}
	if len(items) != len(weights) {
		return zero, ErrWeightMismatch
	}

	total := 0.0
	for _, w := range weights {
		total += float64(w)
	}
	if total <= 0 {
		return zero, ErrZeroWeight
	}

	threshold, err := g.Float(
		faker.WithMax(total),
		faker.WithPrecision(total/weightedResolution),
	)
	if err != nil {
		return zero, err
	}

	current := 0.0
	for i, w := range weights {
		current += float64(w)
		if threshold < current {
			return items[i], nil
		}
	}
	// The threshold grid includes the total itself; land on the last
	// positively weighted element.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return items[i], nil
		}
	}
	return items[len(items)-1], nil
}

// Shuffle returns a reordered copy of items, leaving the input untouched.
// Each position past the first costs one draw.
func Shuffle[T any](g *faker.Generator, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)

	for i := len(out) - 1; i > 0; i-- {
		j, _ := g.NumberMax(float64(i))
		out[i], out[int(j)] = out[int(j)], out[i]
	}
	return out
}

// Sample selects n distinct elements by partially shuffling a copy of the
// input. The count is clamped to [0, len(items)]; the input is never
// reordered.
func Sample[T any](g *faker.Generator, items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	if n <= 0 {
		return []T{}
	}

	pool := make([]T, len(items))
	copy(pool, items)

	cut := len(pool) - n
	for i := len(pool) - 1; i >= cut; i-- {
		j, _ := g.NumberMax(float64(i))
		pool[i], pool[int(j)] = pool[int(j)], pool[i]
	}
	return pool[cut:]
}
