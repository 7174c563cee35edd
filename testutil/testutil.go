package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/kmeans/distance"
	"github.com/hupe1980/kmeans/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// UniformPoints generates points with coordinates in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformPoints(num int, dimensions int) model.PointSet {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	points := make(model.PointSet, num)

	for i := range num {
		p := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		for j := range p {
			p[j] = r.rand.Float64()
		}
		points[i] = p
	}

	return points
}

// Blobs generates num points scattered with Gaussian noise around clusters
// well-separated centers placed on a grid of spacing 10. It returns the points
// and the index of the blob each point was drawn from.
func (r *RNG) Blobs(num, dim, clusters int, spread float64) (model.PointSet, []int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	centers := make([]model.Point, clusters)
	for c := range centers {
		center := make(model.Point, dim)
		center[0] = float64(c) * 10
		if dim > 1 {
			center[1] = float64(c%2) * 10
		}
		centers[c] = center
	}

	data := make([]float64, num*dim)
	points := make(model.PointSet, num)
	truth := make([]int, num)

	for i := range num {
		c := i % clusters
		p := data[i*dim : (i+1)*dim : (i+1)*dim]
		for j := range p {
			p[j] = centers[c][j] + r.rand.NormFloat64()*spread
		}
		points[i] = p
		truth[i] = c
	}

	return points, truth
}

// Inertia computes the sum of squared distances from every point to the
// center named by its label.
func Inertia(points model.PointSet, labels []int, centers []model.Point) float64 {
	var sum float64
	for i, p := range points {
		sum += distance.SquaredL2(p, centers[labels[i]])
	}
	return sum
}

// SamePartition reports whether two labelings group the points identically,
// regardless of how cluster ids are numbered.
func SamePartition(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}

	ab := make(map[int]int)
	ba := make(map[int]int)
	for i := range a {
		if x, ok := ab[a[i]]; ok && x != b[i] {
			return false
		}
		if y, ok := ba[b[i]]; ok && y != a[i] {
			return false
		}
		ab[a[i]] = b[i]
		ba[b[i]] = a[i]
	}

	return true
}
