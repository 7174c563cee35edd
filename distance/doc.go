// Package distance provides Euclidean distance calculations over float64 vectors.
//
// Clustering compares points by squared Euclidean distance; the square root is
// only taken when a caller needs a true distance (for example, nearest-point
// queries that report how far away the match is).
//
// # Usage
//
//	d2 := distance.SquaredL2(a, b)
//	d := distance.L2(a, b)
package distance
