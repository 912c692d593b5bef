// Package testutil provides testing utilities for kmeans.
//
// This package is intended for use in tests, benchmarks and examples only.
// It provides helpers for generating random points, well-separated blobs
// with known membership, and brute-force nearest-centroid ground truth.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	points := rng.UniformVectors(1000, 2, -10, 10)
//
// # Blobs
//
//	points, labels := rng.Blobs([][]float64{{0, 0}, {50, 50}}, 100, 1.0)
//
// # Ground Truth
//
//	idx := testutil.NearestIndex(point, centroids, distance.Euclidean)
package testutil
