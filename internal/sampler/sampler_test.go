package sampler

import (
	"math"
	"testing"

	"github.com/hupe1980/kmeans/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightedIndex_SinglePositive(t *testing.T) {
	src := random.New(1)
	for range 1000 {
		idx, err := WeightedIndex([]float64{0, 0, 5}, src)
		require.NoError(t, err)
		assert.Equal(t, 2, idx)
	}
}

func TestWeightedIndex_Cumulative(t *testing.T) {
	weights := []float64{1, 2, 0, 1}

	tests := []struct {
		name  string
		draw  float64
		index int
	}{
		{"First", 0.0, 0},
		{"FirstUpper", 0.2, 0},
		{"Second", 0.25, 1},
		{"SecondUpper", 0.7, 1},
		{"SkipsZero", 0.75, 3},
		{"Last", 0.999, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := WeightedIndex(weights, random.NewSequence(tt.draw))
			require.NoError(t, err)
			assert.Equal(t, tt.index, idx)
		})
	}
}

func TestWeightedIndex_AllZeroFallsBackToUniform(t *testing.T) {
	idx, err := WeightedIndex([]float64{0, 0, 0, 0}, random.NewSequence(0.6))
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	seen := make(map[int]bool)
	src := random.New(3)
	for range 500 {
		idx, err := WeightedIndex([]float64{0, 0, 0}, src)
		require.NoError(t, err)
		seen[idx] = true
	}
	assert.Len(t, seen, 3)
}

func TestWeightedIndex_Distribution(t *testing.T) {
	weights := []float64{1, 3}
	src := random.New(11)

	counts := make([]int, 2)
	const draws = 20000
	for range draws {
		idx, err := WeightedIndex(weights, src)
		require.NoError(t, err)
		counts[idx]++
	}

	assert.InDelta(t, 0.75, float64(counts[1])/draws, 0.02)
}

func TestWeightedIndex_Errors(t *testing.T) {
	_, err := WeightedIndex(nil, random.New(1))
	assert.ErrorIs(t, err, ErrNoWeights)

	_, err = WeightedIndex([]float64{1, -1}, random.New(1))
	assert.ErrorIs(t, err, ErrNegativeWeight)
}

func TestWeightedIndex_NaN(t *testing.T) {
	_, err := WeightedIndex([]float64{1, math.NaN()}, random.New(1))
	assert.ErrorIs(t, err, ErrNegativeWeight)
}

func TestWeightedIndex_InfiniteWeights(t *testing.T) {
	weights := []float64{0, math.Inf(1), 5, math.Inf(1)}

	idx, err := WeightedIndex(weights, random.NewSequence(0.0))
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	idx, err = WeightedIndex(weights, random.NewSequence(0.9))
	require.NoError(t, err)
	assert.Equal(t, 3, idx)
}

func TestWeightedIndex_OverflowingSum(t *testing.T) {
	weights := []float64{math.MaxFloat64, math.MaxFloat64, 0}

	idx, err := WeightedIndex(weights, random.NewSequence(0.25))
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	idx, err = WeightedIndex(weights, random.NewSequence(0.75))
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}
