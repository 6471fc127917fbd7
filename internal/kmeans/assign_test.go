package kmeans

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestFindClosestCentroids(t *testing.T) {
	centroids := mat.NewDense(3, 2, []float64{
		0, 0, // 0
		10, 10, // 1
		20, 20, // 2
	})

	// Query close to 0,0
	res := FindClosestCentroids([]float64{1, 1}, centroids, 2)
	assert.Equal(t, []int{0, 1}, res)

	// Query close to 20,20
	res = FindClosestCentroids([]float64{19, 19}, centroids, 1)
	assert.Equal(t, []int{2}, res)

	// n larger than k is clamped
	res = FindClosestCentroids([]float64{9, 9}, centroids, 10)
	assert.Equal(t, []int{1, 0, 2}, res)

	assert.Nil(t, FindClosestCentroids([]float64{0, 0}, centroids, 0))
}

func TestFindClosestCentroids_StableOnTies(t *testing.T) {
	centroids := mat.NewDense(4, 1, []float64{6, 4, 6, 4})

	res := FindClosestCentroids([]float64{5}, centroids, 4)
	assert.Equal(t, []int{0, 1, 2, 3}, res)
}

func TestAssignPartition(t *testing.T) {
	centroids := mat.NewDense(2, 2, []float64{0, 0.5, 10, 0.5})

	assert.Equal(t, 0, AssignPartition([]float64{0.5, 0.5}, centroids))
	assert.Equal(t, 1, AssignPartition([]float64{10.5, 10.5}, centroids))
	// Equidistant: lowest index.
	assert.Equal(t, 0, AssignPartition([]float64{5, 0.5}, centroids))
}
