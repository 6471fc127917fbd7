package fgt

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with clustering-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCount adds a count (number of points) field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogIteration logs one finished assignment/update round.
func (l *Logger) LogIteration(ctx context.Context, iteration int, errSum, delta float64, emptyClusters int) {
	l.DebugContext(ctx, "iteration completed",
		"iteration", iteration,
		"sse", errSum,
		"delta", delta,
		"empty_clusters", emptyClusters,
	)
}

// LogCluster logs the outcome of a Cluster call.
func (l *Logger) LogCluster(ctx context.Context, iterations int, duration time.Duration, err error) {
	var nce *ErrConvergenceNotReached
	switch {
	case err == nil:
		l.InfoContext(ctx, "clustering completed",
			"iterations", iterations,
			"duration", duration,
		)
	case errors.As(err, &nce):
		l.WarnContext(ctx, "clustering stopped at iteration cap",
			"iterations", iterations,
			"delta", nce.Delta,
			"epsilon", nce.Epsilon,
			"duration", duration,
		)
	default:
		l.ErrorContext(ctx, "clustering failed",
			"iterations", iterations,
			"error", err,
		)
	}
}
