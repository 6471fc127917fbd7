package kmeans

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/fgt/resource"
)

// DefaultMaxIterations caps the convergence loop when Config.MaxIterations is not set.
const DefaultMaxIterations = 1000

// NoRadius is the radius reported for clusters without assigned points.
const NoRadius = 0.0

// IterationStats describes one completed iteration.
type IterationStats struct {
	Iteration     int
	Error         float64
	Delta         float64
	Counts        []int // copy, safe to retain
	EmptyClusters int
}

// Config tunes a Run.
type Config struct {
	// Workers is the number of goroutines sharing the point range.
	// If <= 0, runtime.GOMAXPROCS(0) is used. Always clamped to the number of points.
	Workers int

	// MaxIterations caps the convergence loop. If <= 0, DefaultMaxIterations.
	MaxIterations int

	// Resources optionally limits working memory and concurrent workers.
	Resources *resource.Controller

	// OnIteration is called by the coordinating goroutine after every update.
	OnIteration func(IterationStats)
}

// Result is the outcome of a Run. All fields are owned by the caller.
type Result struct {
	Clusters   *mat.Dense
	Labels     []int
	Counts     []int
	Radii      []float64
	MaxRadius  float64
	Error      float64
	Delta      float64
	Iterations int
	Converged  bool
}

// Validate checks the inputs of Run without allocating.
func Validate(points, starting mat.Matrix, k int, epsilon float64) error {
	n, dim := dims(points)
	if n == 0 || dim == 0 {
		return ErrEmptyPointSet
	}
	if k <= 0 || k > n {
		return fmt.Errorf("%w: k=%d with %d points", ErrInvalidClusterCount, k, n)
	}
	if !(epsilon > 0) {
		return fmt.Errorf("%w: got %v", ErrNonPositiveTolerance, epsilon)
	}
	r, c := dims(starting)
	if r != k || c != dim {
		return &DimensionError{WantRows: k, WantCols: dim, GotRows: r, GotCols: c}
	}
	return nil
}

// Run clusters points into k clusters starting from the given centroids.
//
// points is only read. starting is copied; the copy is refined in place and
// returned as Result.Clusters. When the iteration cap is reached Run returns
// the complete (unconverged) Result together with a *NotConvergedError.
func Run(ctx context.Context, points, starting *mat.Dense, k int, epsilon float64, cfg Config) (*Result, error) {
	if err := Validate(points, starting, k, epsilon); err != nil {
		return nil, err
	}

	n, dim := points.Dims()
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, n)
	maxIter := cfg.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}

	bytes := WorkingSetBytes(n, dim, k, workers)
	if err := cfg.Resources.AcquireMemory(bytes); err != nil {
		return nil, err
	}
	defer cfg.Resources.ReleaseMemory(bytes)

	e := newEngine(points, starting, k, workers, cfg.Resources)

	var (
		errSum, oldErr, delta float64
		iterations            int
		converged             bool
	)
	for iterations < maxIter {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		oldErr = errSum
		if err := e.step(ctx); err != nil {
			return nil, err
		}
		iterations++
		errSum = e.errSum
		delta = math.Abs(errSum - oldErr)

		if cfg.OnIteration != nil {
			cfg.OnIteration(IterationStats{
				Iteration:     iterations,
				Error:         errSum,
				Delta:         delta,
				Counts:        slices.Clone(e.counts),
				EmptyClusters: countZeros(e.counts),
			})
		}

		if !(delta > epsilon) {
			converged = true
			break
		}
	}

	radii, maxRadius, err := e.radii(ctx)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Clusters:   e.clusters,
		Labels:     e.labels,
		Counts:     e.counts,
		Radii:      radii,
		MaxRadius:  maxRadius,
		Error:      errSum,
		Delta:      delta,
		Iterations: iterations,
		Converged:  converged,
	}
	if !converged {
		return res, &NotConvergedError{Iterations: iterations, Delta: delta, Epsilon: epsilon}
	}
	return res, nil
}

// WorkingSetBytes estimates the memory a Run allocates for its buffers.
func WorkingSetBytes(n, dim, k, workers int) int64 {
	const word = 8
	// centroids, sums, counts, labels
	shared := 2*k*dim + k + n
	// local sums, local counts, local radii
	perWorker := k*dim + k + k
	return int64(shared+workers*perWorker) * word
}

func dims(m mat.Matrix) (int, int) {
	if m == nil {
		return 0, 0
	}
	if d, ok := m.(*mat.Dense); ok && d == nil {
		return 0, 0
	}
	return m.Dims()
}

func countZeros(counts []int) int {
	var z int
	for _, c := range counts {
		if c == 0 {
			z++
		}
	}
	return z
}
