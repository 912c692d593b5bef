package kmeans

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with kmeans-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithRunID adds a run identifier to the logger.
func (l *Logger) WithRunID(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("run_id", id),
	}
}

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCount adds a point count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogSeed logs the initial cluster set of a run.
func (l *Logger) LogSeed(ctx context.Context, clusters ClusterSet, threshold float64) {
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	l.DebugContext(ctx, "clusters seeded",
		"clusters", clusters.String(),
		"threshold", threshold,
	)
}

// LogIteration logs one accumulation pass.
func (l *Logger) LogIteration(ctx context.Context, iteration int, oscillation float64, clusters ClusterSet) {
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	l.DebugContext(ctx, "pass completed",
		"iteration", iteration,
		"oscillation", oscillation,
		"clusters", clusters.String(),
	)
}

// LogConverged logs a run that reached its threshold.
func (l *Logger) LogConverged(ctx context.Context, iterations int, oscillation float64) {
	l.InfoContext(ctx, "run converged",
		"iterations", iterations,
		"oscillation", oscillation,
	)
}

// LogRunFailed logs a run that stopped with an error.
func (l *Logger) LogRunFailed(ctx context.Context, iteration int, err error) {
	l.ErrorContext(ctx, "run failed",
		"iteration", iteration,
		"error", err,
	)
}
