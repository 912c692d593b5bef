package kmeans

import (
	"log/slog"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	maxIterations    int
}

// Option configures a Run or Fit call.
type Option func(*options)

// WithMaxIterations caps the number of accumulation passes.
//
// A run that has not converged after n passes fails with ErrNotConverged.
// If n <= 0, the run iterates until it converges or its context is canceled.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring runs.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &kmeans.BasicMetricsCollector{}
//	clusters, _ := kmeans.Fit(ctx, ds, 3, 0.01, kmeans.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
//	fmt.Printf("Passes: %d, Avg latency: %dns\n", stats.IterationCount, stats.IterationAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for runs.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := kmeans.NewJSONLogger(slog.LevelDebug)
//	clusters, _ := kmeans.Fit(ctx, ds, 3, 0.01, kmeans.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
