// Package kmeans partitions points in a D-dimensional real vector space into
// K clusters with Lloyd's algorithm.
//
// Centers are seeded by one of two strategies, uniform bounding-box sampling
// (InitRandom) or k-means++ (InitKMeansPP, default), then refined by
// alternating nearest-center assignment and mean re-estimation until no
// label changes.
//
// # Quick Start
//
//	points := model.PointSet{{0, 0}, {0, 1}, {10, 0}, {10, 1}}
//	res, err := kmeans.Fit(ctx, points, 2, kmeans.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Labels)  // [0 0 1 1]
//	res.WriteCenters(os.Stdout)
//
// # Stateful API
//
// A Clusterer is configured with setters that fail fast on invalid input and
// exposes results only after a run has finished:
//
//	c := kmeans.New(kmeans.WithInitMethod(kmeans.InitRandom))
//	_ = c.SetPoints(points)
//	_ = c.SetK(2)
//	c.SetRandom(false) // reproducible
//	if _, err := c.Cluster(ctx); err != nil {
//	    return err
//	}
//	idx, _ := c.IndicesWithLabel(1)
//
// # Determinism
//
// All randomness flows through random.Source. WithSeed and SetRandom(false)
// give bit-identical results for identical input; WithSource injects any
// generator, including random.Sequence for exact draws in tests.
//
// # Termination
//
// A run stops at the first assignment round that changes no label
// (StateConverged) or after WithMaxIterations center re-estimations
// (StateExhausted, default bound DefaultMaxIterations). Clusters that lose
// all points are handled by the EmptyClusterPolicy.
package kmeans
