// Package kmeans implements the parallel k-means engine behind fgt.Cluster.
//
// Each iteration fans the point range out to a fixed set of workers
// (errgroup). Every worker assigns its points to the nearest centroid and
// accumulates coordinate sums, counts and squared error into private
// buffers, then folds them into the shared totals under a single mutex.
// Waiting on the group is the barrier after which the coordinating
// goroutine recomputes the centroids. The loop stops when the change in
// total squared error is within epsilon, the iteration cap is hit, or the
// context is canceled.
//
// After the loop one more parallel pass (conc result pool) computes the
// per-cluster radii.
//
// The order in which worker error sums are added is not fixed, so results
// are bit-reproducible only for a fixed worker count. Labels and counts do
// not depend on the worker count for well-separated data.
package kmeans
