package kmeans

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/fgt/distance"
)

// AssignPartition finds the closest centroid for a vector.
// Ties go to the lowest index, the same rule the clustering loop uses.
func AssignPartition(vec []float64, centroids *mat.Dense) int {
	j, _ := distance.Nearest(vec, centroids)
	return j
}

type centroidDist struct {
	id   int
	dist float64
}

// FindClosestCentroids returns the indices of the n closest centroids to the
// query vector, nearest first. Equal distances keep index order.
func FindClosestCentroids(query []float64, centroids *mat.Dense, n int) []int {
	k, _ := centroids.Dims()
	n = min(n, k)
	if n <= 0 {
		return nil
	}

	dists := make([]centroidDist, k)
	for i := 0; i < k; i++ {
		dists[i] = centroidDist{id: i, dist: distance.SquaredL2(query, centroids.RawRowView(i))}
	}

	slices.SortStableFunc(dists, func(a, b centroidDist) int {
		return cmp.Compare(a.dist, b.dist)
	})

	result := make([]int, n)
	for i := 0; i < n; i++ {
		result[i] = dists[i].id
	}

	return result
}
