package kmeans

import (
	"math"
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting run metrics.
// Implement this interface to integrate with monitoring systems like Prometheus
// (see the prom package).
type MetricsCollector interface {
	// RecordIteration is called after each accumulation pass.
	// oscillation is the pass's total oscillation.
	RecordIteration(iteration int, oscillation float64, duration time.Duration)

	// RecordRun is called once a run stops.
	// iterations is the number of passes started, err is nil if the run converged.
	RecordRun(iterations int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIteration(int, float64, time.Duration) {}
func (NoopMetricsCollector) RecordRun(int, time.Duration, error)         {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// It is safe for concurrent use.
type BasicMetricsCollector struct {
	RunCount            atomic.Int64
	RunErrors           atomic.Int64
	RunTotalNanos       atomic.Int64
	IterationCount      atomic.Int64
	IterationTotalNanos atomic.Int64
	lastOscillation     atomic.Uint64
}

// RecordIteration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIteration(_ int, oscillation float64, duration time.Duration) {
	b.IterationCount.Add(1)
	b.IterationTotalNanos.Add(duration.Nanoseconds())
	b.lastOscillation.Store(math.Float64bits(oscillation))
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(_ int, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		RunCount:          b.RunCount.Load(),
		RunErrors:         b.RunErrors.Load(),
		RunAvgNanos:       avg(b.RunTotalNanos.Load(), b.RunCount.Load()),
		IterationCount:    b.IterationCount.Load(),
		IterationAvgNanos: avg(b.IterationTotalNanos.Load(), b.IterationCount.Load()),
		LastOscillation:   math.Float64frombits(b.lastOscillation.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	RunCount          int64
	RunErrors         int64
	RunAvgNanos       int64
	IterationCount    int64
	IterationAvgNanos int64
	LastOscillation   float64
}
