package kmeans

import (
	"bufio"
	"io"
	"slices"
	"time"

	"github.com/hupe1980/kmeans/internal/nn"
	"github.com/hupe1980/kmeans/model"
)

// Result is the frozen outcome of a clustering run.
type Result struct {
	// RunID identifies the run in logs.
	RunID string
	// K is the number of clusters.
	K int
	// Labels holds the cluster index of every point, by position.
	Labels []int
	// Centers holds the K cluster centers.
	Centers []model.Point
	// State is StateConverged or StateExhausted.
	State State
	// Converged reports whether the final assignment round changed no label.
	Converged bool
	// Iterations is the number of center re-estimations performed.
	Iterations int
	// Inertia is the sum of squared distances from points to their centers.
	Inertia float64
	// EmptyClusters lists clusters that were empty at least once during the run.
	EmptyClusters []int
	// Duration is the wall time of the run.
	Duration time.Duration

	points model.PointSet
}

// ClusterStats summarizes cluster sizes of a Result.
type ClusterStats struct {
	PointCount     int
	NumClusters    int
	AvgClusterSize float64
	MinClusterSize int
	MaxClusterSize int
	Iterations     int
	Converged      bool
	Inertia        float64
	Duration       time.Duration
}

func (r *Result) checkLabel(label int) error {
	if label < 0 || label >= r.K {
		return &InvalidLabelError{Label: label, K: r.K}
	}
	return nil
}

// IndicesWithLabel returns the positions of all points labeled label.
func (r *Result) IndicesWithLabel(label int) ([]int, error) {
	if err := r.checkLabel(label); err != nil {
		return nil, err
	}

	var indices []int
	for i, l := range r.Labels {
		if l == label {
			indices = append(indices, i)
		}
	}
	return indices, nil
}

// PointsWithLabel returns copies of all points labeled label.
func (r *Result) PointsWithLabel(label int) ([]model.Point, error) {
	if err := r.checkLabel(label); err != nil {
		return nil, err
	}

	var points []model.Point
	for i, l := range r.Labels {
		if l == label {
			points = append(points, r.points[i].Clone())
		}
	}
	return points, nil
}

// Sizes returns the number of points in every cluster.
func (r *Result) Sizes() []int {
	sizes := make([]int, r.K)
	for _, l := range r.Labels {
		sizes[l]++
	}
	return sizes
}

// Stats returns cluster size statistics.
func (r *Result) Stats() ClusterStats {
	sizes := r.Sizes()

	stats := ClusterStats{
		PointCount:  len(r.Labels),
		NumClusters: r.K,
		Iterations:  r.Iterations,
		Converged:   r.Converged,
		Inertia:     r.Inertia,
		Duration:    r.Duration,
	}
	if len(sizes) > 0 {
		stats.MinClusterSize = slices.Min(sizes)
		stats.MaxClusterSize = slices.Max(sizes)
		stats.AvgClusterSize = float64(len(r.Labels)) / float64(len(sizes))
	}
	return stats
}

// Predict returns the label of the center nearest to p.
func (r *Result) Predict(p model.Point) (int, error) {
	if dim := len(r.Centers[0]); len(p) != dim {
		return -1, &DimensionMismatchError{Index: 0, Expected: dim, Actual: len(p)}
	}
	label, _ := nn.ClosestCenter(p, r.Centers)
	return label, nil
}

// WriteCenters writes one center per line, coordinates separated by spaces.
func (r *Result) WriteCenters(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, c := range r.Centers {
		if _, err := bw.WriteString(c.String()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func (r *Result) clone() *Result {
	out := *r
	out.Labels = slices.Clone(r.Labels)
	out.EmptyClusters = slices.Clone(r.EmptyClusters)
	out.Centers = make([]model.Point, len(r.Centers))
	for i, c := range r.Centers {
		out.Centers[i] = c.Clone()
	}
	return &out
}
