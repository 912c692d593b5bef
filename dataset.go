package kmeans

import (
	"fmt"
	"slices"
)

// DataSet is an append-only collection of points sharing one dimension.
// The zero value is an empty DataSet ready for use.
type DataSet struct {
	points []Vector
}

// Add appends point to the dataset.
// Returns *ErrDimensionMismatch if point's dimension differs from the points already added.
func (d *DataSet) Add(point Vector) error {
	if len(d.points) > 0 && point.Dim() != d.points[0].Dim() {
		return &ErrDimensionMismatch{Expected: d.points[0].Dim(), Actual: point.Dim()}
	}
	d.points = append(d.points, point)
	return nil
}

// Len returns the number of points.
func (d *DataSet) Len() int { return len(d.points) }

// At returns the i-th point in insertion order.
func (d *DataSet) At(i int) Vector { return d.points[i] }

// Points returns a copy of the points in insertion order.
func (d *DataSet) Points() []Vector { return slices.Clone(d.points) }

// Dim returns the dimension of the points, or 0 if the dataset is empty.
func (d *DataSet) Dim() int {
	if len(d.points) == 0 {
		return 0
	}
	return d.points[0].Dim()
}

// SeedClusters returns a ClusterSet seeded with the first k points.
func (d *DataSet) SeedClusters(k int) (ClusterSet, error) {
	if k < 1 {
		return ClusterSet{}, ErrInvalidK
	}
	if k > len(d.points) {
		return ClusterSet{}, fmt.Errorf("%w: requested %d clusters from %d points", ErrInvalidArgument, k, len(d.points))
	}

	clusters := make([]Cluster, k)
	for i := range k {
		clusters[i] = NewCluster(d.points[i])
	}
	return ClusterSet{clusters: clusters}, nil
}

// Classify folds every point, in order, into its nearest cluster.
//
// The working set is updated after each point, so the returned set carries the
// accumulated count and sum of every cluster. Assignment itself only reads
// centroids, which do not change during a pass.
func (d *DataSet) Classify(clusters ClusterSet) (ClusterSet, error) {
	working := clusters
	for i, p := range d.points {
		nearest, err := working.FindNearest(p)
		if err != nil {
			return ClusterSet{}, fmt.Errorf("point %d: %w", i, err)
		}
		working = working.Replace(nearest.Accumulate(p))
	}
	return working, nil
}
