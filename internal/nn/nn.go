// Package nn implements brute-force nearest-neighbor queries over small point
// collections. Every query is a linear scan; ties resolve to the lowest index.
package nn

import (
	"errors"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/kmeans/distance"
	"github.com/hupe1980/kmeans/model"
)

// ErrNoCandidate is returned when every point is excluded from a query.
var ErrNoCandidate = errors.New("nn: no candidate point left after exclusion")

// ExclusionSet returns a bitmap holding the given point indices.
func ExclusionSet(ids ...int) *roaring.Bitmap {
	bm := roaring.New()
	for _, id := range ids {
		bm.Add(uint32(id))
	}
	return bm
}

// ClosestCenter returns the index of the center nearest to q and the squared
// distance to it. It returns -1 if centers is empty. When every distance
// overflows to +Inf the first center wins.
func ClosestCenter(q model.Point, centers []model.Point) (int, float64) {
	best := -1
	bestDist := math.Inf(1)

	for i, c := range centers {
		d := distance.SquaredL2(q, c)
		if best < 0 || d < bestDist {
			bestDist = d
			best = i
		}
	}

	return best, bestDist
}

// ClosestPoint returns the index of the point nearest to q and the Euclidean
// distance to it, skipping every index contained in exclude (which may be nil).
func ClosestPoint(q model.Point, points model.PointSet, exclude *roaring.Bitmap) (int, float64, error) {
	best := -1
	bestDist := math.Inf(1)

	for i, p := range points {
		if exclude != nil && exclude.Contains(uint32(i)) {
			continue
		}
		d := distance.SquaredL2(q, p)
		if best < 0 || d < bestDist {
			bestDist = d
			best = i
		}
	}

	if best < 0 {
		return -1, 0, ErrNoCandidate
	}

	return best, math.Sqrt(bestDist), nil
}

// ClosestPointIndex returns the index of the point nearest to q.
func ClosestPointIndex(q model.Point, points model.PointSet) (int, error) {
	idx, _, err := ClosestPoint(q, points, nil)
	return idx, err
}

// ClosestPointDistance returns the distance between q and its nearest point.
func ClosestPointDistance(q model.Point, points model.PointSet) (float64, error) {
	_, d, err := ClosestPoint(q, points, nil)
	return d, err
}

// ClosestPointDistanceExcluding returns the distance between q and its nearest
// point other than the one at excluded.
func ClosestPointDistanceExcluding(q model.Point, points model.PointSet, excluded int) (float64, error) {
	_, d, err := ClosestPoint(q, points, ExclusionSet(excluded))
	return d, err
}

// ClosestPointDistanceExcludingIDs returns the distance between q and its
// nearest point whose index is not in excluded.
func ClosestPointDistanceExcludingIDs(q model.Point, points model.PointSet, excluded []int) (float64, error) {
	_, d, err := ClosestPoint(q, points, ExclusionSet(excluded...))
	return d, err
}
