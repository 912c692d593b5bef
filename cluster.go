package kmeans

import "fmt"

// Cluster accumulates the points assigned to a centroid during one pass.
//
// The sum is the elementwise sum of exactly count points. A Cluster is never
// modified in place; Accumulate returns a new value.
type Cluster struct {
	centroid Vector
	count    int
	sum      Vector
}

// NewCluster creates an empty cluster centered at seed.
func NewCluster(seed Vector) Cluster {
	return Cluster{
		centroid: seed,
		count:    0,
		sum:      Zero(seed.Dim()),
	}
}

// Centroid returns the centroid the cluster was seeded with.
func (c Cluster) Centroid() Vector { return c.centroid }

// Count returns the number of accumulated points.
func (c Cluster) Count() int { return c.count }

// Sum returns the elementwise sum of the accumulated points.
func (c Cluster) Sum() Vector { return c.sum }

// Accumulate returns a copy of c with point folded into its count and sum.
func (c Cluster) Accumulate(point Vector) Cluster {
	return Cluster{
		centroid: c.centroid,
		count:    c.count + 1,
		sum:      c.sum.Add(point),
	}
}

// NextCentroid returns the mean of the accumulated points.
// Returns ErrEmptyCluster if no point has been accumulated.
func (c Cluster) NextCentroid() (Vector, error) {
	next, err := c.sum.Div(float64(c.count))
	if err != nil {
		return Vector{}, fmt.Errorf("%w: centroid %v", ErrEmptyCluster, c.centroid)
	}
	return next, nil
}

// Oscillation returns how far the centroid would move if recentered now.
func (c Cluster) Oscillation() (float64, error) {
	next, err := c.NextCentroid()
	if err != nil {
		return 0, err
	}
	return c.centroid.Distance(next), nil
}

func (c Cluster) String() string {
	return fmt.Sprintf("{centroid: %v, count: %d, sum: %v}", c.centroid, c.count, c.sum)
}
