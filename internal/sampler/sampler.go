// Package sampler draws indices from discrete weighted distributions.
package sampler

import (
	"errors"
	"math"

	"github.com/hupe1980/kmeans/random"
)

var (
	// ErrNoWeights is returned when sampling from an empty weight vector.
	ErrNoWeights = errors.New("sampler: no weights")

	// ErrNegativeWeight is returned when a weight is negative or NaN.
	ErrNegativeWeight = errors.New("sampler: weights must be non-negative")
)

// WeightedIndex returns an index drawn with probability proportional to its weight.
//
// A uniform value u in [0, S) is drawn, where S is the sum of all weights, and
// the first positive-weight index whose cumulative sum exceeds u is returned.
// If every weight is zero the draw falls back to a uniform index over all weights.
//
// +Inf weights dominate every finite weight: the draw is uniform among them.
// Finite weights whose sum overflows are rescaled by the largest weight first.
func WeightedIndex(weights []float64, src random.Source) (int, error) {
	if len(weights) == 0 {
		return -1, ErrNoWeights
	}

	var sum, largest float64
	var infinite []int
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return -1, ErrNegativeWeight
		}
		if math.IsInf(w, 1) {
			infinite = append(infinite, i)
			continue
		}
		sum += w
		largest = max(largest, w)
	}

	if len(infinite) > 0 {
		return infinite[src.IntN(len(infinite))], nil
	}
	if sum == 0 {
		return src.IntN(len(weights)), nil
	}

	scale := 1.0
	if math.IsInf(sum, 1) {
		scale = largest
		sum = 0
		for _, w := range weights {
			sum += w / scale
		}
	}

	target := sum * src.Float64()

	last := -1
	var cumulative float64
	for i, w := range weights {
		if w == 0 {
			continue
		}
		cumulative += w / scale
		last = i
		if target < cumulative {
			return i, nil
		}
	}

	// Rounding can leave target at or past the final cumulative sum.
	return last, nil
}
