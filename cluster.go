package fgt

import (
	"context"
	"errors"
	"runtime"
	"time"

	"golang.org/x/time/rate"
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/fgt/internal/kmeans"
)

// NoRadius is the radius reported for a cluster without assigned points.
const NoRadius = kmeans.NoRadius

// IterationStats describes one finished assignment/update round.
type IterationStats struct {
	Iteration     int
	Error         float64 // sum of squared distances in this round
	Delta         float64 // |Error - previous Error|
	Counts        []int   // occupancy after this round; a copy
	EmptyClusters int
}

// Cluster partitions the rows of points into nclusters clusters with an
// iterative, parallel k-means starting from startingClusters.
//
// points (R×C) is only read. startingClusters (nclusters×C) is copied and
// the copy refined until the change in total squared distance between two
// rounds is at most epsilon. The call blocks until then, until the
// iteration cap is reached or until ctx is done.
//
// Ties between equidistant centroids go to the lowest cluster index. A
// cluster that loses all its points gets the zero vector as centroid and
// NoRadius as radius; it is not reseeded.
//
// Errors:
//   - ErrEmptyPointSet, ErrInvalidClusterCount, ErrNonPositiveTolerance and
//     *ErrDimensionMismatch for invalid input, before any work is done.
//   - ErrMemoryLimitExceeded if a resource controller rejects the buffers.
//   - *ErrConvergenceNotReached, returned together with the complete
//     unconverged result (Converged is false).
//   - ctx.Err() on cancellation, with a nil result.
func Cluster(ctx context.Context, points mat.Matrix, nclusters int, epsilon float64, startingClusters mat.Matrix, optFns ...Option) (*Clustering, error) {
	opts := applyOptions(optFns)
	begin := time.Now()
	logger := opts.logger.WithK(nclusters)

	stats := RunStats{Clusters: nclusters}
	finish := func(res *Clustering, err error) (*Clustering, error) {
		stats.Duration = time.Since(begin)
		stats.Err = err
		if res != nil {
			stats.Iterations = res.Iterations
			stats.Converged = res.Converged
			stats.Error = res.Error
			stats.MaxRadius = res.MaxRadius
			stats.EmptyClusters = res.EmptyClusters()
		}
		opts.metricsCollector.RecordCluster(stats)
		logger.LogCluster(ctx, stats.Iterations, stats.Duration, err)
		return res, err
	}

	if err := kmeans.Validate(points, startingClusters, nclusters, epsilon); err != nil {
		return finish(nil, translateError(err))
	}

	n, dim := points.Dims()
	stats.Points, stats.Dimensions = n, dim
	stats.Workers = opts.workers
	if stats.Workers <= 0 {
		stats.Workers = runtime.GOMAXPROCS(0)
	}
	stats.Workers = min(stats.Workers, n)
	logger = logger.WithDimension(dim).WithCount(n)

	progress := &rate.Sometimes{Interval: opts.progressInterval}
	if opts.progressInterval <= 0 {
		progress = &rate.Sometimes{Every: 1}
	}

	cfg := kmeans.Config{
		Workers:       opts.workers,
		MaxIterations: opts.maxIterations,
		Resources:     opts.resources,
		OnIteration: func(s kmeans.IterationStats) {
			opts.metricsCollector.RecordIteration(s.Iteration, s.Error, s.Delta)
			progress.Do(func() {
				logger.LogIteration(ctx, s.Iteration, s.Error, s.Delta, s.EmptyClusters)
			})
			if opts.onIteration != nil {
				opts.onIteration(IterationStats(s))
			}
		},
	}

	res, err := kmeans.Run(ctx, asDense(points), asDense(startingClusters), nclusters, epsilon, cfg)
	if res == nil {
		return finish(nil, translateError(err))
	}

	return finish(&Clustering{
		MaxRadius:  res.MaxRadius,
		Labels:     res.Labels,
		Clusters:   res.Clusters,
		Counts:     res.Counts,
		Radii:      res.Radii,
		Iterations: res.Iterations,
		Error:      res.Error,
		Converged:  res.Converged,
	}, translateError(err))
}

// IsConvergenceNotReached reports whether err says the iteration cap was hit.
func IsConvergenceNotReached(err error) bool {
	var nce *ErrConvergenceNotReached
	return errors.As(err, &nce)
}

// asDense returns m itself when it already is a *mat.Dense, otherwise a copy.
func asDense(m mat.Matrix) *mat.Dense {
	if d, ok := m.(*mat.Dense); ok {
		return d
	}
	return mat.DenseCopyOf(m)
}
