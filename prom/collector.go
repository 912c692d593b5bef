package prom

import (
	"errors"
	"time"

	"github.com/hupe1980/kmeans"
	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every metric name.
const Namespace = "kmeans"

var _ kmeans.MetricsCollector = (*Collector)(nil)

// Collector implements kmeans.MetricsCollector on top of Prometheus metrics.
type Collector struct {
	iterations       prometheus.Counter
	oscillation      prometheus.Gauge
	iterationLatency prometheus.Histogram
	runs             *prometheus.CounterVec
	runLatency       *prometheus.HistogramVec
	runIterations    prometheus.Histogram
}

// NewCollector creates a Collector and registers its metrics with reg.
// If reg is nil, prometheus.DefaultRegisterer is used.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "iterations_total",
			Help:      "Total accumulation passes completed",
		}),
		oscillation: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "oscillation",
			Help:      "Total oscillation of the most recent pass",
		}),
		iterationLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "iteration_duration_seconds",
			Help:      "Latency of a single accumulation pass",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "runs_total",
			Help:      "Total runs by outcome",
		}, []string{"status"}),
		runLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "run_duration_seconds",
			Help:      "Latency of a complete run",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status"}),
		runIterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "run_iterations",
			Help:      "Passes needed per run",
			Buckets:   prometheus.LinearBuckets(1, 5, 10),
		}),
	}

	for _, m := range []prometheus.Collector{
		c.iterations,
		c.oscillation,
		c.iterationLatency,
		c.runs,
		c.runLatency,
		c.runIterations,
	} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// RecordIteration implements kmeans.MetricsCollector.
func (c *Collector) RecordIteration(_ int, oscillation float64, duration time.Duration) {
	c.iterations.Inc()
	c.oscillation.Set(oscillation)
	c.iterationLatency.Observe(duration.Seconds())
}

// RecordRun implements kmeans.MetricsCollector.
func (c *Collector) RecordRun(iterations int, duration time.Duration, err error) {
	status := statusOf(err)
	c.runs.WithLabelValues(status).Inc()
	c.runLatency.WithLabelValues(status).Observe(duration.Seconds())
	c.runIterations.Observe(float64(iterations))
}

func statusOf(err error) string {
	switch {
	case err == nil:
		return "converged"
	case errors.Is(err, kmeans.ErrNotConverged):
		return "not_converged"
	case errors.Is(err, kmeans.ErrEmptyCluster):
		return "empty_cluster"
	default:
		return "error"
	}
}
