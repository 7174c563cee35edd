// Package testutil provides testing utilities for the kmeans module.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating reproducible point sets and a
// brute-force oracle for clustering quality.
//
// # Point Generation
//
//	rng := testutil.NewRNG(seed)
//	points := rng.UniformPoints(100, 2)          // uniform [0, 1)
//	points, truth := rng.Blobs(300, 2, 3, 0.2)   // Gaussian blobs with ground-truth labels
//
// # Quality Oracle
//
//	sse := testutil.Inertia(points, labels, centers)
package testutil
