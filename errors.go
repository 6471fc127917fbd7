package fgt

import (
	"errors"
	"fmt"

	"github.com/hupe1980/fgt/internal/kmeans"
	"github.com/hupe1980/fgt/resource"
)

var (
	// ErrInvalidClusterCount is returned when the cluster count is not in (0, points].
	ErrInvalidClusterCount = errors.New("invalid cluster count")

	// ErrEmptyPointSet is returned when the point set has no rows or no columns.
	ErrEmptyPointSet = errors.New("empty point set")

	// ErrNonPositiveTolerance is returned when epsilon is zero, negative or NaN.
	ErrNonPositiveTolerance = errors.New("convergence tolerance must be positive")

	// ErrMemoryLimitExceeded is returned when the working buffers of a call
	// do not fit the configured resource controller.
	ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded
)

// ErrDimensionMismatch indicates starting clusters whose shape is not
// nclusters×dimensions.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	ExpectedRows, ExpectedCols int
	ActualRows, ActualCols     int
	cause                      error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %dx%d starting clusters, got %dx%d",
		e.ExpectedRows, e.ExpectedCols, e.ActualRows, e.ActualCols)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrConvergenceNotReached indicates that the iteration cap was hit while
// the change in squared error was still above epsilon. Cluster returns it
// together with the complete, unconverged result.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrConvergenceNotReached struct {
	Iterations int
	Delta      float64
	Epsilon    float64
	cause      error
}

func (e *ErrConvergenceNotReached) Error() string {
	return fmt.Sprintf("convergence not reached after %d iterations: delta %g > epsilon %g",
		e.Iterations, e.Delta, e.Epsilon)
}

func (e *ErrConvergenceNotReached) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, kmeans.ErrInvalidClusterCount):
		return fmt.Errorf("%w: %w", ErrInvalidClusterCount, err)
	case errors.Is(err, kmeans.ErrEmptyPointSet):
		return fmt.Errorf("%w: %w", ErrEmptyPointSet, err)
	case errors.Is(err, kmeans.ErrNonPositiveTolerance):
		return fmt.Errorf("%w: %w", ErrNonPositiveTolerance, err)
	}

	var de *kmeans.DimensionError
	if errors.As(err, &de) {
		return &ErrDimensionMismatch{
			ExpectedRows: de.WantRows,
			ExpectedCols: de.WantCols,
			ActualRows:   de.GotRows,
			ActualCols:   de.GotCols,
			cause:        err,
		}
	}
	var nce *kmeans.NotConvergedError
	if errors.As(err, &nce) {
		return &ErrConvergenceNotReached{
			Iterations: nce.Iterations,
			Delta:      nce.Delta,
			Epsilon:    nce.Epsilon,
			cause:      err,
		}
	}

	return err
}
