package kmeans

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidClusterCount is returned when k <= 0 or k exceeds the number of points.
	ErrInvalidClusterCount = errors.New("kmeans: invalid cluster count")
	// ErrEmptyPointSet is returned when the point set has no rows or no columns.
	ErrEmptyPointSet = errors.New("kmeans: empty point set")
	// ErrNonPositiveTolerance is returned when epsilon is not a positive number.
	ErrNonPositiveTolerance = errors.New("kmeans: tolerance must be positive")
)

// DimensionError reports starting centroids whose shape is not k×dim.
type DimensionError struct {
	WantRows, WantCols int
	GotRows, GotCols   int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("kmeans: starting clusters are %dx%d, want %dx%d",
		e.GotRows, e.GotCols, e.WantRows, e.WantCols)
}

// NotConvergedError is returned together with a complete Result when the
// iteration cap was reached before the error change fell within epsilon.
type NotConvergedError struct {
	Iterations int
	Delta      float64
	Epsilon    float64
}

func (e *NotConvergedError) Error() string {
	return fmt.Sprintf("kmeans: not converged after %d iterations (delta %g > epsilon %g)",
		e.Iterations, e.Delta, e.Epsilon)
}
