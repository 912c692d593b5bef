// Package prom exports kmeans run metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	collector, err := prom.NewCollector(reg)
//	if err != nil {
//	    return err
//	}
//	clusters, err := kmeans.Fit(ctx, ds, k, threshold, kmeans.WithMetricsCollector(collector))
package prom
