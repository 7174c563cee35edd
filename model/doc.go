// Package model defines the point types shared by the clustering engine.
//
// # Data Types
//
//   - Point: a fixed-dimension vector of float64 coordinates
//   - PointSet: an ordered collection of points sharing one dimension
//
// The dimension of a PointSet is fixed by its first point; Validate reports
// the first point that disagrees.
//
//	points := model.PointSet{{0, 0}, {0, 1}, {10, 0}}
//	if err := points.Validate(); err != nil {
//	    return err
//	}
//	lo, hi := points.Bounds()
package model
