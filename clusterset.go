package kmeans

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// ClusterSet is an ordered, fixed-length collection of clusters.
//
// Every transformation returns a new ClusterSet and leaves the receiver as it was.
type ClusterSet struct {
	clusters []Cluster
}

// NewClusterSet creates a ClusterSet from the given clusters, in order.
func NewClusterSet(clusters ...Cluster) ClusterSet {
	return ClusterSet{clusters: slices.Clone(clusters)}
}

// Len returns the number of clusters.
func (s ClusterSet) Len() int { return len(s.clusters) }

// At returns the i-th cluster.
func (s ClusterSet) At(i int) Cluster { return s.clusters[i] }

// Clusters returns a copy of the clusters.
func (s ClusterSet) Clusters() []Cluster { return slices.Clone(s.clusters) }

// Centroids returns the centroid of every cluster, in order.
func (s ClusterSet) Centroids() []Vector {
	centroids := make([]Vector, len(s.clusters))
	for i, c := range s.clusters {
		centroids[i] = c.centroid
	}
	return centroids
}

// FindNearest returns the cluster whose centroid is closest to point.
//
// Ties resolve to the cluster that comes first. A NaN or infinite distance
// yields ErrInvalidComparison.
func (s ClusterSet) FindNearest(point Vector) (Cluster, error) {
	i, err := s.nearestIndex(point)
	if err != nil {
		return Cluster{}, err
	}
	return s.clusters[i], nil
}

func (s ClusterSet) nearestIndex(point Vector) (int, error) {
	if len(s.clusters) == 0 {
		return -1, ErrEmptyClusterSet
	}

	best := -1
	minDist := math.Inf(1)

	for i, c := range s.clusters {
		d := point.Distance(c.centroid)
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return -1, fmt.Errorf("%w: distance from %v to centroid %v is %v", ErrInvalidComparison, point, c.centroid, d)
		}
		if best == -1 || d < minDist {
			minDist = d
			best = i
		}
	}

	return best, nil
}

// Replace returns a copy of s in which every cluster sharing updated's centroid
// is replaced by updated.
func (s ClusterSet) Replace(updated Cluster) ClusterSet {
	clusters := make([]Cluster, len(s.clusters))
	for i, c := range s.clusters {
		if c.centroid.Equal(updated.centroid) {
			clusters[i] = updated
		} else {
			clusters[i] = c
		}
	}
	return ClusterSet{clusters: clusters}
}

// Recentered returns a set of empty clusters seeded at each cluster's next centroid.
func (s ClusterSet) Recentered() (ClusterSet, error) {
	clusters := make([]Cluster, len(s.clusters))
	for i, c := range s.clusters {
		next, err := c.NextCentroid()
		if err != nil {
			return ClusterSet{}, fmt.Errorf("cluster %d: %w", i, err)
		}
		clusters[i] = NewCluster(next)
	}
	return ClusterSet{clusters: clusters}, nil
}

// TotalOscillation sums the oscillation of every cluster.
func (s ClusterSet) TotalOscillation() (float64, error) {
	var total float64
	for i, c := range s.clusters {
		o, err := c.Oscillation()
		if err != nil {
			return 0, fmt.Errorf("cluster %d: %w", i, err)
		}
		total += o
	}
	return total, nil
}

func (s ClusterSet) String() string {
	parts := make([]string, len(s.clusters))
	for i, c := range s.clusters {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
