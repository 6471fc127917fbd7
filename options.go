package fgt

import (
	"log/slog"
	"time"

	"github.com/hupe1980/fgt/internal/kmeans"
	"github.com/hupe1980/fgt/resource"
)

// DefaultMaxIterations is the iteration cap used unless WithMaxIterations is given.
const DefaultMaxIterations = kmeans.DefaultMaxIterations

// DefaultProgressInterval is the minimum spacing of per-iteration debug logs.
const DefaultProgressInterval = time.Second

type options struct {
	workers          int
	maxIterations    int
	metricsCollector MetricsCollector
	logger           *Logger
	resources        *resource.Controller
	progressInterval time.Duration
	onIteration      func(IterationStats)
}

// Option configures a Cluster call.
type Option func(*options)

// WithWorkers sets the number of goroutines that share the point range.
//
// If workers <= 0, runtime.GOMAXPROCS(0) is used. The value is always
// clamped to the number of points.
//
// A single worker gives bit-for-bit reproducible results. With more workers
// the order in which partial error sums are added varies between runs, so
// the reported Error may differ in the last bits; on well-separated data the
// labels, counts and (up to rounding) centroids and radii do not change.
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithMaxIterations caps the number of assignment/update rounds.
//
// When the cap is reached before the change in squared error falls within
// epsilon, Cluster returns the unconverged result together with an
// *ErrConvergenceNotReached. If n <= 0, DefaultMaxIterations is used.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring runs.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &fgt.BasicMetricsCollector{}
//	res, _ := fgt.Cluster(ctx, points, k, 1e-6, start, fgt.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
//	fmt.Printf("Runs: %d, Avg iterations: %.1f\n", stats.RunCount, stats.AvgIterations)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for runs.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := fgt.NewJSONLogger(slog.LevelDebug)
//	res, _ := fgt.Cluster(ctx, points, k, 1e-6, start, fgt.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithResourceController limits working memory and concurrent workers.
// Share one controller between calls to bound them together.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.resources = rc
	}
}

// WithProgressInterval sets the minimum time between per-iteration debug
// logs. The first iteration is always logged. If d <= 0, every iteration
// is logged.
func WithProgressInterval(d time.Duration) Option {
	return func(o *options) {
		o.progressInterval = d
	}
}

// WithIterationCallback registers fn to be called after every iteration.
// fn runs on the calling goroutine of Cluster between iterations and must
// not block for long.
func WithIterationCallback(fn func(IterationStats)) Option {
	return func(o *options) {
		o.onIteration = fn
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		progressInterval: DefaultProgressInterval,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
