package nn

import (
	"math"
	"testing"

	"github.com/hupe1980/kmeans/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var grid = model.PointSet{
	{0, 0},
	{0, 1},
	{10, 0},
	{10, 1},
}

func TestClosestCenter(t *testing.T) {
	centers := []model.Point{{0, 0.5}, {10, 0.5}}

	idx, d := ClosestCenter(model.Point{1, 1}, centers)
	assert.Equal(t, 0, idx)
	assert.InDelta(t, 1.25, d, 1e-12)

	idx, _ = ClosestCenter(model.Point{9, 0}, centers)
	assert.Equal(t, 1, idx)

	t.Run("TieLowestIndex", func(t *testing.T) {
		idx, _ := ClosestCenter(model.Point{5, 0.5}, centers)
		assert.Equal(t, 0, idx)

		idx, _ = ClosestCenter(model.Point{1, 1}, []model.Point{{2, 2}, {0, 0}, {2, 2}})
		assert.Equal(t, 0, idx)
	})

	t.Run("Empty", func(t *testing.T) {
		idx, _ := ClosestCenter(model.Point{1, 1}, nil)
		assert.Equal(t, -1, idx)
	})
}

func TestClosestPoint(t *testing.T) {
	idx, d, err := ClosestPoint(model.Point{9, 1}, grid, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, idx)
	assert.InDelta(t, 1.0, d, 1e-12)

	idx, d, err = ClosestPoint(model.Point{9, 1}, grid, ExclusionSet(3))
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
	assert.InDelta(t, 1.4142135623730951, d, 1e-12)

	t.Run("AllExcluded", func(t *testing.T) {
		_, _, err := ClosestPoint(model.Point{0, 0}, grid, ExclusionSet(0, 1, 2, 3))
		assert.ErrorIs(t, err, ErrNoCandidate)

		_, _, err = ClosestPoint(model.Point{0, 0}, nil, nil)
		assert.ErrorIs(t, err, ErrNoCandidate)
	})
}

func TestClosestPointHelpers(t *testing.T) {
	idx, err := ClosestPointIndex(model.Point{0.1, 0.9}, grid)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	d, err := ClosestPointDistance(model.Point{0, 0}, grid)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)

	d, err = ClosestPointDistanceExcluding(model.Point{0, 0}, grid, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, d, 1e-12)

	d, err = ClosestPointDistanceExcludingIDs(model.Point{0, 0}, grid, []int{0, 1})
	require.NoError(t, err)
	assert.InDelta(t, 10.0, d, 1e-12)

	_, err = ClosestPointDistanceExcludingIDs(model.Point{0, 0}, grid, []int{0, 1, 2, 3})
	assert.ErrorIs(t, err, ErrNoCandidate)
}

func TestExclusionSet(t *testing.T) {
	bm := ExclusionSet(1, 5, 5)
	assert.Equal(t, uint64(2), bm.GetCardinality())
	assert.True(t, bm.Contains(5))
	assert.False(t, bm.Contains(0))
}

func TestOverflowingDistances(t *testing.T) {
	far := model.PointSet{{1e200}, {2e200}, {3e200}}

	idx, d := ClosestCenter(model.Point{0}, far)
	assert.Equal(t, 0, idx)
	assert.True(t, math.IsInf(d, 1))

	idx, d, err := ClosestPoint(model.Point{0}, far, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.True(t, math.IsInf(d, 1))

	idx, _, err = ClosestPoint(model.Point{0}, far, ExclusionSet(0))
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}
