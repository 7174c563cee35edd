package kmeans

import (
	"testing"

	"github.com/hupe1980/kmeans/model"
	"github.com/hupe1980/kmeans/random"
	"github.com/hupe1980/kmeans/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var square = model.PointSet{
	{0, 0},
	{0, 1},
	{10, 0},
	{10, 1},
}

func TestRandomInit(t *testing.T) {
	points := testutil.NewRNG(1).UniformPoints(50, 3)
	lo, hi := points.Bounds()

	centers, err := RandomInit{}.Init(points, 5, random.New(9))
	require.NoError(t, err)
	require.Len(t, centers, 5)

	for _, c := range centers {
		require.Len(t, c, 3)
		for d, v := range c {
			assert.GreaterOrEqual(t, v, lo[d])
			assert.LessOrEqual(t, v, hi[d])
		}
	}

	t.Run("Deterministic", func(t *testing.T) {
		again, err := RandomInit{}.Init(points, 5, random.New(9))
		require.NoError(t, err)
		assert.Equal(t, centers, again)
	})

	t.Run("FlatDimension", func(t *testing.T) {
		flat := model.PointSet{{1, 5}, {2, 5}, {3, 5}}
		centers, err := RandomInit{}.Init(flat, 2, random.New(1))
		require.NoError(t, err)
		for _, c := range centers {
			assert.Equal(t, 5.0, c[1])
		}
	})
}

func TestPlusPlusInit(t *testing.T) {
	t.Run("SteeredBySource", func(t *testing.T) {
		// First draw picks index 0; weights are then [0, 1, 100, 101] and
		// 0.25 * 202 falls inside the weight of index 2.
		centers, err := PlusPlusInit{}.Init(square, 2, random.NewSequence(0.0, 0.25))
		require.NoError(t, err)
		assert.Equal(t, []model.Point{{0, 0}, {10, 0}}, centers)
	})

	t.Run("DistinctChoices", func(t *testing.T) {
		points := testutil.NewRNG(5).UniformPoints(40, 2)
		for seed := range uint64(20) {
			centers, err := PlusPlusInit{}.Init(points, 10, random.New(seed))
			require.NoError(t, err)
			require.Len(t, centers, 10)

			seen := make(map[int]bool)
			for _, c := range centers {
				idx := indexOf(points, c)
				require.GreaterOrEqual(t, idx, 0, "center must be an input point")
				assert.False(t, seen[idx], "index %d chosen twice", idx)
				seen[idx] = true
			}
		}
	})

	t.Run("KEqualsN", func(t *testing.T) {
		centers, err := PlusPlusInit{}.Init(square, 4, random.New(3))
		require.NoError(t, err)
		assert.ElementsMatch(t, []model.Point(square), centers)
	})

	t.Run("Duplicates", func(t *testing.T) {
		dup := model.PointSet{{1, 1}, {1, 1}, {1, 1}}
		centers, err := PlusPlusInit{}.Init(dup, 3, random.New(3))
		require.NoError(t, err)
		assert.Len(t, centers, 3)
	})

	t.Run("DoesNotAlias", func(t *testing.T) {
		points := model.PointSet{{0, 0}, {5, 5}}
		centers, err := PlusPlusInit{}.Init(points, 2, random.New(1))
		require.NoError(t, err)
		centers[0][0] = 99
		assert.NotEqual(t, 99.0, points[0][0])
		assert.NotEqual(t, 99.0, points[1][0])
	})
}

func TestInit_LargeMagnitude(t *testing.T) {
	t.Run("PlusPlus", func(t *testing.T) {
		// Every squared distance from {0} overflows; the second center is
		// drawn uniformly among the remaining points.
		far := model.PointSet{{0}, {1e200}, {2e200}}
		centers, err := PlusPlusInit{}.Init(far, 2, random.NewSequence(0.0, 0.9))
		require.NoError(t, err)
		assert.Equal(t, []model.Point{{0}, {2e200}}, centers)
	})

	t.Run("Random", func(t *testing.T) {
		wide := model.PointSet{{-1e308}, {1e308}}
		centers, err := RandomInit{}.Init(wide, 2, random.NewSequence(0.0, 0.5))
		require.NoError(t, err)
		assert.Equal(t, []model.Point{{-1e308}, {0}}, centers)
	})
}

func TestInitInvalidK(t *testing.T) {
	for _, seeder := range []Initializer{RandomInit{}, PlusPlusInit{}} {
		_, err := seeder.Init(square, 0, random.New(1))
		assert.ErrorIs(t, err, ErrInvalidK)

		_, err = seeder.Init(square, 5, random.New(1))
		assert.ErrorIs(t, err, ErrTooFewPoints)
	}
}

func indexOf(points model.PointSet, p model.Point) int {
	for i, q := range points {
		if q.Equal(p) {
			return i
		}
	}
	return -1
}
