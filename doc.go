// Package kmeans implements Lloyd's k-means clustering over n-dimensional points.
//
// Points are immutable Vectors collected in a DataSet. A ClusterSet holds one
// Cluster per requested group; each Cluster remembers its centroid and
// accumulates the count and sum of the points assigned to it during a pass.
//
// # Quick Start
//
//	var ds kmeans.DataSet
//	for _, p := range [][]float64{{1, 1}, {2, 2}, {8, 8}, {9, 9}} {
//	    if err := ds.Add(kmeans.NewVector(p...)); err != nil {
//	        return err
//	    }
//	}
//
//	clusters, err := kmeans.Fit(ctx, &ds, 2, 0.02)
//
// Fit seeds the clusters from the first k points. Use DataSet.SeedClusters and
// Run directly to supply a different initial ClusterSet.
//
// # The Loop
//
// Every pass classifies all points against the current centroids, then sums
// the oscillation of every cluster: the distance its centroid would move if it
// were recentered on the mean of its points. When that total is at or below
// the threshold the classified clusters are returned. Otherwise each cluster is
// recentered and emptied and the next pass begins.
//
// A pass that leaves a cluster without points cannot be recentered; the run
// fails with ErrEmptyCluster, which wraps ErrDivideByZero.
//
// # Termination
//
// Lloyd's algorithm has no built-in iteration bound. Run checks its context
// before every pass, and WithMaxIterations turns a runaway loop into
// ErrNotConverged.
//
// # Observability
//
//	metrics := &kmeans.BasicMetricsCollector{}
//	clusters, err := kmeans.Fit(ctx, &ds, 2, 0.02,
//	    kmeans.WithLogger(kmeans.NewJSONLogger(slog.LevelDebug)),
//	    kmeans.WithMetricsCollector(metrics),
//	)
//
// The prom package provides a Prometheus-backed MetricsCollector.
package kmeans
