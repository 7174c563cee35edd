package kmeans

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/kmeans/distance"
	"github.com/hupe1980/kmeans/internal/sampler"
	"github.com/hupe1980/kmeans/model"
	"github.com/hupe1980/kmeans/random"
)

// Initializer produces the K initial cluster centers for a run.
//
// Implementations must return exactly k centers, each with the dimension of
// points, and must draw all randomness from src.
type Initializer interface {
	Init(points model.PointSet, k int, src random.Source) ([]model.Point, error)
}

// RandomInit places every center at a uniformly random location inside the
// bounding box of the points. Centers need not coincide with input points.
type RandomInit struct{}

// Init implements Initializer.
func (RandomInit) Init(points model.PointSet, k int, src random.Source) ([]model.Point, error) {
	if err := checkK(k, len(points)); err != nil {
		return nil, err
	}

	lo, hi := points.Bounds()

	centers := make([]model.Point, k)
	for c := range centers {
		center := make(model.Point, len(lo))
		for d := range center {
			center[d] = random.Uniform(src, lo[d], hi[d])
		}
		centers[c] = center
	}

	return centers, nil
}

// PlusPlusInit seeds centers with k-means++: the first center is a uniformly
// chosen point and every further center is a point drawn with probability
// proportional to its squared distance from the nearest center chosen so far.
//
// A point is never chosen twice. When every remaining point coincides with a
// chosen center, the next one is drawn uniformly from the remaining points.
type PlusPlusInit struct{}

// Init implements Initializer.
func (PlusPlusInit) Init(points model.PointSet, k int, src random.Source) ([]model.Point, error) {
	n := len(points)
	if err := checkK(k, n); err != nil {
		return nil, err
	}

	chosen := roaring.New()
	centers := make([]model.Point, 0, k)

	first := src.IntN(n)
	chosen.Add(uint32(first))
	centers = append(centers, points[first].Clone())

	// nearest[i] is the squared distance from point i to its closest chosen center.
	nearest := make([]float64, n)
	for i, p := range points {
		nearest[i] = distance.SquaredL2(p, centers[0])
	}

	weights := make([]float64, n)
	for len(centers) < k {
		var total float64
		for i := range points {
			if chosen.Contains(uint32(i)) {
				weights[i] = 0
				continue
			}
			weights[i] = nearest[i]
			total += nearest[i]
		}

		var next int
		if total == 0 {
			next = pickRemaining(chosen, n, src)
		} else {
			idx, err := sampler.WeightedIndex(weights, src)
			if err != nil {
				return nil, err
			}
			next = idx
		}

		chosen.Add(uint32(next))
		center := points[next].Clone()
		centers = append(centers, center)

		for i, p := range points {
			if d := distance.SquaredL2(p, center); d < nearest[i] {
				nearest[i] = d
			}
		}
	}

	return centers, nil
}

// pickRemaining draws uniformly among the indices in [0, n) not in chosen.
func pickRemaining(chosen *roaring.Bitmap, n int, src random.Source) int {
	remaining := roaring.New()
	remaining.AddRange(0, uint64(n))
	remaining.AndNot(chosen)

	idx, _ := remaining.Select(uint32(src.IntN(int(remaining.GetCardinality()))))
	return int(idx)
}
