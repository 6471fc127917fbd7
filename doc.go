// Package fgt provides the clustering stage of fast Gauss transforms.
//
// Cluster partitions N points in D dimensions into K clusters with a
// parallel k-means and summarizes every cluster by its centroid and radius
// (the largest distance from an assigned point to the centroid). Kernel
// summation code uses centroids and radii to decide which clusters are far
// enough from a target to be approximated and which need exact evaluation.
//
// # Quick Start
//
//	points := mat.NewDense(4, 2, []float64{0, 0, 0, 1, 10, 0, 10, 1})
//	start := mat.NewDense(2, 2, []float64{0, 0, 10, 0})
//
//	res, err := fgt.Cluster(ctx, points, 2, 1e-6, start)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Labels, res.Radii, res.MaxRadius) // [0 0 1 1] [0.5 0.5] 0.5
//
// Choosing K and the starting centroids is left to the caller, e.g. by
// sampling K distinct points.
//
// # Concurrency
//
// Each round splits the points into contiguous ranges, one per worker.
// Workers accumulate into private buffers, fold them into shared totals
// under one lock and meet at a barrier before the centroids are updated by
// a single goroutine. A single worker is bit-for-bit reproducible; with
// several workers only the floating-point summation order of the error
// changes.
//
//	res, err := fgt.Cluster(ctx, points, k, 1e-6, start,
//	    fgt.WithWorkers(8),
//	    fgt.WithMaxIterations(500),
//	    fgt.WithResourceController(rc),
//	)
//
// # Termination
//
// The loop stops when the total squared distance changes by at most
// epsilon between two rounds. WithMaxIterations caps the number of rounds;
// hitting the cap returns the result together with *ErrConvergenceNotReached.
// Canceling ctx aborts between rounds and inside long point ranges.
//
// # Known Limitations
//
//   - A cluster that loses all its points is moved to the origin and never
//     reseeded.
//   - Only Euclidean distance is supported.
//
// # Observability
//
//   - Structured logging via log/slog (WithLogger, WithLogLevel)
//   - Metrics via MetricsCollector (BasicMetricsCollector, or
//     observability.PrometheusCollector for Prometheus)
package fgt
