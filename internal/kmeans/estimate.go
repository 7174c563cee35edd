package kmeans

import (
	"fmt"
	"math"

	"github.com/hupe1980/kmeans/model"
	"github.com/hupe1980/kmeans/random"
)

// EmptyPolicy decides what happens to a cluster that receives no points
// during center estimation.
type EmptyPolicy int

const (
	// EmptyKeep leaves the previous center unchanged.
	EmptyKeep EmptyPolicy = iota
	// EmptyReseed moves the center onto a uniformly chosen input point.
	EmptyReseed
	// EmptyFail aborts the run with a DegenerateClusterError.
	EmptyFail
)

func (p EmptyPolicy) String() string {
	switch p {
	case EmptyKeep:
		return "keep"
	case EmptyReseed:
		return "reseed"
	case EmptyFail:
		return "fail"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// Estimate recomputes each center in place as the mean of the points labeled
// with it. Clusters without members are handled according to policy; their
// ids are returned in ascending order.
func Estimate(points model.PointSet, labels []int, centers []model.Point, policy EmptyPolicy, src random.Source) ([]int, error) {
	k := len(centers)
	dim := points.Dim()

	sums := make([]float64, k*dim)
	counts := make([]int, k)

	for i, p := range points {
		c := labels[i]
		sum := sums[c*dim : (c+1)*dim]
		for d, v := range p {
			sum[d] += v
		}
		counts[c]++
	}

	var empty []int
	for c := range k {
		if counts[c] > 0 {
			n := float64(counts[c])
			for d := range dim {
				sum := sums[c*dim+d]
				if math.IsInf(sum, 0) {
					centers[c][d] = scaledMean(points, labels, c, d, n)
					continue
				}
				centers[c][d] = sum / n
			}
			continue
		}

		empty = append(empty, c)
		switch policy {
		case EmptyReseed:
			copy(centers[c], points[src.IntN(len(points))])
		case EmptyFail:
			return empty, &DegenerateClusterError{Cluster: c}
		}
	}

	return empty, nil
}

// scaledMean averages coordinate d of cluster c by dividing before summing,
// for sums that overflow.
func scaledMean(points model.PointSet, labels []int, c, d int, n float64) float64 {
	var mean float64
	for i, p := range points {
		if labels[i] == c {
			mean += p[d] / n
		}
	}
	return mean
}
