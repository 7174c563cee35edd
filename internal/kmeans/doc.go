// Package kmeans implements Lloyd's k-means clustering.
//
// A run seeds K centers with an Initializer (bounding-box random placement or
// k-means++), then alternates nearest-center assignment and mean re-estimation
// until no label changes or the iteration bound is reached.
//
// The public kmeans package wraps this engine with configuration, logging
// and metrics.
package kmeans
