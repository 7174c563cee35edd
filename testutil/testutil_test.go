package testutil

import (
	"testing"

	"github.com/hupe1980/kmeans/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformPoints(t *testing.T) {
	rng := NewRNG(4711)

	p := rng.UniformPoints(8, 32)

	assert.Equal(t, 8, len(p))
	assert.Equal(t, 32, len(p[0]))
	assert.LessOrEqual(t, p[0][0], 1.0)
	assert.GreaterOrEqual(t, p[1][0], 0.0)
	require.NoError(t, p.Validate())
}

func TestBlobs(t *testing.T) {
	rng := NewRNG(4711)

	points, truth := rng.Blobs(90, 3, 3, 0.1)

	assert.Len(t, points, 90)
	assert.Len(t, truth, 90)
	assert.Equal(t, 3, points.Dim())

	for i, p := range points {
		assert.InDelta(t, float64(truth[i])*10, p[0], 1.0)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	p1 := rng.UniformPoints(1, 10)

	rng.Reset()
	p2 := rng.UniformPoints(1, 10)

	assert.Equal(t, p1, p2)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestInertia(t *testing.T) {
	points := model.PointSet{{0, 0}, {0, 1}, {10, 0}, {10, 1}}
	centers := []model.Point{{0, 0.5}, {10, 0.5}}

	assert.InDelta(t, 1.0, Inertia(points, []int{0, 0, 1, 1}, centers), 1e-12)
}

func TestSamePartition(t *testing.T) {
	assert.True(t, SamePartition([]int{0, 0, 1, 2}, []int{2, 2, 0, 1}))
	assert.False(t, SamePartition([]int{0, 0, 1}, []int{0, 1, 1}))
	assert.False(t, SamePartition([]int{0, 1}, []int{0, 0}))
	assert.False(t, SamePartition([]int{0}, []int{0, 0}))
}
