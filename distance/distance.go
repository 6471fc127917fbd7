package distance

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func SquaredL2(a, b []float64) float64 {
	var sum float64
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return sum
}

// L2 calculates the Euclidean distance between two vectors.
// It is exactly math.Sqrt(SquaredL2(a, b)), so radii computed with L2 agree
// bit for bit with distances checked by callers through the same function.
func L2(a, b []float64) float64 {
	return math.Sqrt(SquaredL2(a, b))
}

// Nearest returns the index of the row of centroids closest to point and
// the squared distance to it.
//
// Rows are scanned in increasing index order with a strict less-than
// comparison, so on exact ties the lowest index wins. Row 0 is the initial
// candidate, which keeps the result in range even when every distance is
// +Inf. Returns (-1, +Inf) if centroids has no rows.
func Nearest(point []float64, centroids *mat.Dense) (int, float64) {
	k, _ := centroids.Dims()
	if k == 0 {
		return -1, math.Inf(1)
	}

	best := 0
	minDist := SquaredL2(point, centroids.RawRowView(0))
	for j := 1; j < k; j++ {
		d := SquaredL2(point, centroids.RawRowView(j))
		if d < minDist {
			minDist = d
			best = j
		}
	}

	return best, minDist
}
