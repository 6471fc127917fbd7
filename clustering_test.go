package fgt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func testClustering() *Clustering {
	return &Clustering{
		Labels:     []int{0, 2, 0, 2, 2},
		Clusters:   mat.NewDense(3, 2, []float64{0, 0, 50, 50, 10, 0}),
		Counts:     []int{2, 0, 3},
		Radii:      []float64{1, NoRadius, 2},
		MaxRadius:  2,
		Iterations: 4,
		Converged:  true,
	}
}

func TestClustering_Accessors(t *testing.T) {
	c := testClustering()

	assert.Equal(t, 3, c.NumClusters())
	assert.Equal(t, 2, c.Label(3))
	assert.Equal(t, 1, c.EmptyClusters())

	centroid := c.Centroid(2)
	assert.Equal(t, []float64{10, 0}, centroid)

	centroid[0] = 99
	assert.Equal(t, 10.0, c.Clusters.At(2, 0), "Centroid must return a copy")
}

func TestClustering_Members(t *testing.T) {
	c := testClustering()

	assert.Equal(t, []uint32{0, 2}, c.Members(0).ToArray())
	assert.True(t, c.Members(1).IsEmpty())
	assert.Equal(t, []uint32{1, 3, 4}, c.Members(2).ToArray())
}

func TestClustering_Partition(t *testing.T) {
	c := testClustering()

	sets, err := c.Partition()
	require.NoError(t, err)
	require.Len(t, sets, 3)

	var total uint64
	for j, s := range sets {
		assert.Equal(t, uint64(c.Counts[j]), s.GetCardinality())
		assert.True(t, s.Equals(c.Members(j)))
		total += s.GetCardinality()
	}
	assert.Equal(t, uint64(len(c.Labels)), total)

	// Sets are disjoint.
	assert.False(t, sets[0].Intersects(sets[2]))
}

func TestClustering_Assign(t *testing.T) {
	c := testClustering()

	assert.Equal(t, 0, c.Assign([]float64{1, 1}))
	assert.Equal(t, 2, c.Assign([]float64{9, -1}))
	assert.Equal(t, 1, c.Assign([]float64{40, 45}))

	// Equidistant between clusters 0 and 2 goes to the lower index.
	assert.Equal(t, 0, c.Assign([]float64{5, 0}))
}

func TestClustering_NearestClusters(t *testing.T) {
	c := testClustering()

	assert.Equal(t, []int{2, 0, 1}, c.NearestClusters([]float64{8, 0}, 3))
	assert.Equal(t, []int{2}, c.NearestClusters([]float64{8, 0}, 1))
	assert.Equal(t, []int{2, 0, 1}, c.NearestClusters([]float64{8, 0}, 10))
	assert.Nil(t, c.NearestClusters([]float64{8, 0}, 0))
}
