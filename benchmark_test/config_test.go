package benchmark_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/fgt/testutil"
)

// ============================================================================
// Benchmark Configuration
// ============================================================================

// Standard dimensions used across benchmarks. Fast Gauss transforms are
// typically run in low dimensions.
const (
	dimSmall  = 2
	dimMedium = 8
	dimLarge  = 32
)

// Standard dataset sizes.
const (
	sizeSmall  = 10_000  // Quick iteration
	sizeMedium = 100_000 // Default CI
	sizeLarge  = 500_000 // Production-scale
)

// Seed for deterministic benchmarks - enables reproducible comparisons.
const benchSeed = 42

// benchEpsilon is loose enough to converge in a handful of rounds on
// blob data.
const benchEpsilon = 1e-3

// ============================================================================
// Benchmark Helpers
// ============================================================================

// benchData holds a point set together with its starting centroids.
type benchData struct {
	points *mat.Dense
	start  *mat.Dense
	k      int
}

// loadUniform returns n uniform points in [0,1)^dim with k sampled starts.
func loadUniform(b *testing.B, n, dim, k int) benchData {
	b.Helper()
	rng := testutil.NewRNG(benchSeed)
	points := rng.UniformPoints(n, dim)
	return benchData{points: points, start: rng.SampleRows(points, k), k: k}
}

// loadBlobs returns n points around k separated centers, started from the
// first point of every blob.
func loadBlobs(b *testing.B, n, dim, k int) benchData {
	b.Helper()
	rng := testutil.NewRNG(benchSeed)
	points, _ := rng.Blobs(n, dim, k, 0.5, 8)
	return benchData{points: points, start: testutil.HeadRows(points, k), k: k}
}
