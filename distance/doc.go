// Package distance provides the Euclidean distance kernels used by the
// clustering engine.
//
// Points and centroids are float64 rows, usually obtained from a
// gonum *mat.Dense via RawRowView.
//
// # Usage
//
//	d2 := distance.SquaredL2(a, b)
//	d := distance.L2(a, b)
//	j, d2 := distance.Nearest(point, centroids)
package distance
