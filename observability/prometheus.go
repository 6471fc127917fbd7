// Package observability exports clustering metrics to Prometheus.
package observability

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/fgt"
)

const namespace = "fgt"

// Status label values of fgt_cluster_runs_total.
const (
	StatusConverged    = "converged"
	StatusNotConverged = "not_converged"
	StatusError        = "error"
)

// PrometheusCollector implements fgt.MetricsCollector.
type PrometheusCollector struct {
	runs          *prometheus.CounterVec
	duration      prometheus.Histogram
	iterations    prometheus.Histogram
	iterationsAll prometheus.Counter
	sse           prometheus.Gauge
	delta         prometheus.Gauge
	maxRadius     prometheus.Gauge
	emptyClusters prometheus.Gauge
}

var _ fgt.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheusCollector creates the collector and registers its metrics
// with reg. A nil reg uses prometheus.DefaultRegisterer.
func NewPrometheusCollector(reg prometheus.Registerer) (*PrometheusCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &PrometheusCollector{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cluster_runs_total",
			Help:      "Total Cluster calls by outcome",
		}, []string{"status"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cluster_duration_seconds",
			Help:      "Wall time of Cluster calls",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}),
		iterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cluster_iterations",
			Help:      "Assignment/update rounds per Cluster call",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 11),
		}),
		iterationsAll: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cluster_iterations_total",
			Help:      "Total assignment/update rounds",
		}),
		sse: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cluster_last_sse",
			Help:      "Sum of squared distances of the most recent round",
		}),
		delta: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cluster_last_delta",
			Help:      "Change in sum of squared distances of the most recent round",
		}),
		maxRadius: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cluster_last_max_radius",
			Help:      "Largest cluster radius of the most recent successful run",
		}),
		emptyClusters: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cluster_last_empty_clusters",
			Help:      "Clusters without points in the most recent successful run",
		}),
	}

	for _, m := range []prometheus.Collector{
		c.runs, c.duration, c.iterations, c.iterationsAll,
		c.sse, c.delta, c.maxRadius, c.emptyClusters,
	} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// MustNewPrometheusCollector is like NewPrometheusCollector but panics if
// registration fails.
func MustNewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	c, err := NewPrometheusCollector(reg)
	if err != nil {
		panic(err)
	}
	return c
}

// RecordIteration implements fgt.MetricsCollector.
func (c *PrometheusCollector) RecordIteration(_ int, errSum, delta float64) {
	c.iterationsAll.Inc()
	c.sse.Set(errSum)
	c.delta.Set(delta)
}

// RecordCluster implements fgt.MetricsCollector.
func (c *PrometheusCollector) RecordCluster(stats fgt.RunStats) {
	c.runs.WithLabelValues(status(stats.Err)).Inc()
	c.duration.Observe(stats.Duration.Seconds())

	if stats.Iterations == 0 {
		return
	}
	c.iterations.Observe(float64(stats.Iterations))
	c.maxRadius.Set(stats.MaxRadius)
	c.emptyClusters.Set(float64(stats.EmptyClusters))
}

func status(err error) string {
	var nce *fgt.ErrConvergenceNotReached
	switch {
	case err == nil:
		return StatusConverged
	case errors.As(err, &nce):
		return StatusNotConverged
	default:
		return StatusError
	}
}
