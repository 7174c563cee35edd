package model

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrEmptyPointSet is returned when a point set has no points.
	ErrEmptyPointSet = errors.New("point set is empty")

	// ErrZeroDimension is returned when the first point has no coordinates.
	ErrZeroDimension = errors.New("points must have at least one dimension")
)

// DimensionMismatchError indicates a point whose dimension differs from the
// dimension fixed by the first point of the set.
type DimensionMismatchError struct {
	Index    int
	Expected int
	Actual   int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch at point %d: expected %d, got %d", e.Index, e.Expected, e.Actual)
}

// InvalidCoordinateError indicates a NaN or infinite coordinate.
type InvalidCoordinateError struct {
	Index     int
	Dimension int
	Value     float64
}

func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf("invalid coordinate at point %d, dimension %d: %v", e.Index, e.Dimension, e.Value)
}

// Point is an ordered tuple of real coordinates.
type Point []float64

// Dim returns the number of coordinates.
func (p Point) Dim() int { return len(p) }

// Clone returns a deep copy of p.
func (p Point) Clone() Point { return slices.Clone(p) }

// Equal reports whether p and q have identical coordinates.
func (p Point) Equal(q Point) bool { return slices.Equal(p, q) }

// String returns the coordinates separated by single spaces.
func (p Point) String() string {
	var sb strings.Builder
	for i, v := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return sb.String()
}

// PointSet is an ordered sequence of points of equal dimension.
type PointSet []Point

// Len returns the number of points.
func (s PointSet) Len() int { return len(s) }

// Dim returns the dimension of the set (the dimension of its first point),
// or 0 if the set is empty.
func (s PointSet) Dim() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Validate checks that the set is non-empty, that every point has the
// dimension of the first one, and that every coordinate is finite.
func (s PointSet) Validate() error {
	if len(s) == 0 {
		return ErrEmptyPointSet
	}

	dim := len(s[0])
	if dim == 0 {
		return ErrZeroDimension
	}

	for i, p := range s {
		if len(p) != dim {
			return &DimensionMismatchError{Index: i, Expected: dim, Actual: len(p)}
		}
		for d, v := range p {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return &InvalidCoordinateError{Index: i, Dimension: d, Value: v}
			}
		}
	}

	return nil
}

// Clone returns a deep copy of the set backed by a single allocation.
func (s PointSet) Clone() PointSet {
	if s == nil {
		return nil
	}

	dim := s.Dim()
	data := make([]float64, 0, len(s)*dim)
	out := make(PointSet, len(s))
	for i, p := range s {
		start := len(data)
		data = append(data, p...)
		out[i] = Point(data[start:len(data):len(data)])
	}

	return out
}

// Bounds returns the per-dimension minimum and maximum of the set
// (its bounding box). Both are nil for an empty set.
func (s PointSet) Bounds() (lo, hi Point) {
	if len(s) == 0 {
		return nil, nil
	}

	lo = s[0].Clone()
	hi = s[0].Clone()
	for _, p := range s[1:] {
		for d, v := range p {
			if v < lo[d] {
				lo[d] = v
			}
			if v > hi[d] {
				hi[d] = v
			}
		}
	}

	return lo, hi
}

// Mean returns the componentwise mean of the points at the given indices,
// or nil if indices is empty.
func (s PointSet) Mean(indices []int) Point {
	if len(indices) == 0 {
		return nil
	}

	mean := make(Point, s.Dim())
	for _, idx := range indices {
		for d, v := range s[idx] {
			mean[d] += v
		}
	}

	n := float64(len(indices))
	for d := range mean {
		if math.IsInf(mean[d], 0) {
			// The sum overflowed; divide before summing.
			mean[d] = 0
			for _, idx := range indices {
				mean[d] += s[idx][d] / n
			}
			continue
		}
		mean[d] /= n
	}

	return mean
}
