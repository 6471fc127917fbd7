package fgt

import (
	"errors"
	"sync/atomic"
	"time"
)

// RunStats summarizes one Cluster call for a MetricsCollector.
type RunStats struct {
	Points        int
	Dimensions    int
	Clusters      int
	Workers       int
	Iterations    int
	Duration      time.Duration
	Converged     bool
	Error         float64 // final sum of squared distances
	MaxRadius     float64
	EmptyClusters int
	Err           error // nil on success
}

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus;
// see the observability package for a ready-made collector.
type MetricsCollector interface {
	// RecordIteration is called after each assignment/update round.
	// errSum is the round's sum of squared distances, delta its change from
	// the previous round.
	RecordIteration(iteration int, errSum, delta float64)

	// RecordCluster is called once per Cluster call, including calls that
	// fail validation.
	RecordCluster(stats RunStats)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIteration(int, float64, float64) {}
func (NoopMetricsCollector) RecordCluster(RunStats)                {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RunCount        atomic.Int64
	RunErrors       atomic.Int64
	NotConverged    atomic.Int64
	RunTotalNanos   atomic.Int64
	IterationCount  atomic.Int64
	EmptyClusterSum atomic.Int64
}

// RecordIteration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIteration(int, float64, float64) {
	b.IterationCount.Add(1)
}

// RecordCluster implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCluster(stats RunStats) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(stats.Duration.Nanoseconds())
	b.EmptyClusterSum.Add(int64(stats.EmptyClusters))

	var nce *ErrConvergenceNotReached
	switch {
	case stats.Err == nil:
	case errors.As(stats.Err, &nce):
		b.NotConverged.Add(1)
	default:
		b.RunErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	runs := b.RunCount.Load()
	iterations := b.IterationCount.Load()

	s := BasicMetricsStats{
		RunCount:       runs,
		RunErrors:      b.RunErrors.Load(),
		NotConverged:   b.NotConverged.Load(),
		IterationCount: iterations,
	}
	if runs > 0 {
		s.AvgRunNanos = b.RunTotalNanos.Load() / runs
		s.AvgIterations = float64(iterations) / float64(runs)
		s.AvgEmptyClusters = float64(b.EmptyClusterSum.Load()) / float64(runs)
	}
	return s
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	RunCount         int64
	RunErrors        int64
	NotConverged     int64
	IterationCount   int64
	AvgRunNanos      int64
	AvgIterations    float64
	AvgEmptyClusters float64
}
