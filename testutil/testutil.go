package testutil

import (
	"math"
	"math/rand"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformPoints generates an n×dim matrix with values in range [0, 1).
func (r *RNG) UniformPoints(n, dim int) *mat.Dense {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, n*dim)
	for i := range data {
		data[i] = r.rand.Float64()
	}
	return mat.NewDense(n, dim, data)
}

// Blobs generates n points in dim dimensions scattered around k centers.
// Point i belongs to blob i%k, so the first k rows hold one point per blob.
// Center c sits at c*separation on every axis; coordinates get Gaussian
// noise with standard deviation spread.
func (r *RNG) Blobs(n, dim, k int, spread, separation float64) (points, centers *mat.Dense) {
	r.mu.Lock()
	defer r.mu.Unlock()

	centers = mat.NewDense(k, dim, nil)
	for c := 0; c < k; c++ {
		row := centers.RawRowView(c)
		for d := range row {
			row[d] = float64(c) * separation
		}
	}

	points = mat.NewDense(n, dim, nil)
	for i := 0; i < n; i++ {
		center := centers.RawRowView(i % k)
		row := points.RawRowView(i)
		for d := range row {
			row[d] = center[d] + r.rand.NormFloat64()*spread
		}
	}

	return points, centers
}

// SampleRows copies k distinct random rows of m into a new k×cols matrix.
func (r *RNG) SampleRows(m *mat.Dense, k int) *mat.Dense {
	r.mu.Lock()
	perm := r.rand.Perm(m.RawMatrix().Rows)
	r.mu.Unlock()

	_, cols := m.Dims()
	out := mat.NewDense(k, cols, nil)
	for i := 0; i < k; i++ {
		out.SetRow(i, m.RawRowView(perm[i]))
	}
	return out
}

// HeadRows copies the first k rows of m into a new matrix.
func HeadRows(m *mat.Dense, k int) *mat.Dense {
	_, cols := m.Dims()
	return mat.DenseCopyOf(m.Slice(0, k, 0, cols))
}

// BruteForceLabels labels every row of points with the index of the
// closest row of centroids, lowest index first on ties. It shares no code
// with the clustering engine so it can serve as an oracle.
func BruteForceLabels(points, centroids mat.Matrix) []int {
	n, dim := points.Dims()
	k, _ := centroids.Dims()

	labels := make([]int, n)
	for i := 0; i < n; i++ {
		best, bestDist := -1, math.Inf(1)
		for j := 0; j < k; j++ {
			var d float64
			for c := 0; c < dim; c++ {
				diff := points.At(i, c) - centroids.At(j, c)
				d += diff * diff
			}
			if best < 0 || d < bestDist {
				best, bestDist = j, d
			}
		}
		labels[i] = best
	}
	return labels
}
