package fgt

import (
	"fmt"
	"math"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/fgt/internal/kmeans"
)

// Clustering is the result of Cluster. The caller owns it; consumers such
// as a fast Gauss transform should treat it as an immutable snapshot.
type Clustering struct {
	// MaxRadius is the largest of Radii.
	MaxRadius float64
	// Labels holds the cluster index of every point.
	Labels []int
	// Clusters holds the final centroids, one row per cluster.
	Clusters *mat.Dense
	// Counts holds the number of points assigned to every cluster.
	Counts []int
	// Radii holds, per cluster, the largest distance from an assigned point
	// to the centroid, or NoRadius for an empty cluster.
	Radii []float64

	// Iterations is the number of assignment/update rounds performed.
	Iterations int
	// Error is the sum of squared point-to-centroid distances of the last round.
	Error float64
	// Converged is false when the iteration cap stopped the loop.
	Converged bool
}

// NumClusters returns the number of clusters.
func (c *Clustering) NumClusters() int {
	return len(c.Counts)
}

// Label returns the cluster index of point i.
func (c *Clustering) Label(i int) int {
	return c.Labels[i]
}

// Centroid returns a copy of the centroid of cluster j.
func (c *Clustering) Centroid(j int) []float64 {
	return slices.Clone(c.Clusters.RawRowView(j))
}

// EmptyClusters returns how many clusters have no points.
func (c *Clustering) EmptyClusters() int {
	var n int
	for _, cnt := range c.Counts {
		if cnt == 0 {
			n++
		}
	}
	return n
}

// Members returns the indices of the points assigned to cluster j.
func (c *Clustering) Members(j int) *roaring.Bitmap {
	bm := roaring.New()
	for i, l := range c.Labels {
		if l == j {
			bm.Add(uint32(i))
		}
	}
	bm.RunOptimize()
	return bm
}

// Partition returns the member set of every cluster, built in one pass.
// Point indices must fit in uint32.
func (c *Clustering) Partition() ([]*roaring.Bitmap, error) {
	if uint64(len(c.Labels)) > math.MaxUint32 {
		return nil, fmt.Errorf("partition: %d points exceed the uint32 index range", len(c.Labels))
	}

	members := make([][]uint32, len(c.Counts))
	for j, cnt := range c.Counts {
		members[j] = make([]uint32, 0, cnt)
	}
	for i, l := range c.Labels {
		members[l] = append(members[l], uint32(i))
	}

	sets := make([]*roaring.Bitmap, len(members))
	for j, ids := range members {
		sets[j] = roaring.BitmapOf(ids...)
		sets[j].RunOptimize()
	}
	return sets, nil
}

// Assign returns the cluster whose centroid is closest to point, lowest
// index first on ties.
func (c *Clustering) Assign(point []float64) int {
	return kmeans.AssignPartition(point, c.Clusters)
}

// NearestClusters returns the indices of the n clusters whose centroids are
// closest to query, nearest first.
func (c *Clustering) NearestClusters(query []float64, n int) []int {
	return kmeans.FindClosestCentroids(query, c.Clusters, n)
}
