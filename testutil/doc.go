// Package testutil provides testing utilities for fgt.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded RNG for synthetic point sets and a brute-force
// labelling oracle to check clustering results against.
//
// # Random Point Sets
//
//	rng := testutil.NewRNG(seed)
//	points := rng.UniformPoints(1000, 3)          // uniform [0, 1)
//	points, centers := rng.Blobs(1000, 3, 8, 0.1, 10)
//	start := testutil.HeadRows(points, 8)         // one row per blob
//
// # Oracle
//
//	labels := testutil.BruteForceLabels(points, centroids)
package testutil
