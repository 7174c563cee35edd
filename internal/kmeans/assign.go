package kmeans

import (
	"github.com/hupe1980/kmeans/internal/nn"
	"github.com/hupe1980/kmeans/model"
)

// Assign labels every point with the index of its nearest center, overwriting
// labels in place. It returns the number of labels that changed and the sum of
// squared distances from each point to its assigned center.
func Assign(points model.PointSet, centers []model.Point, labels []int) (changed int, inertia float64) {
	for i, p := range points {
		c, d := nn.ClosestCenter(p, centers)
		if labels[i] != c {
			labels[i] = c
			changed++
		}
		inertia += d
	}
	return changed, inertia
}
