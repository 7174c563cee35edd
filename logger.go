package kmeans

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with clustering-specific context.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithRunID adds a run_id field to the logger.
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

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogSeed logs the outcome of center initialization.
func (l *Logger) LogSeed(ctx context.Context, method string, centers int) {
	l.DebugContext(ctx, "centers seeded",
		"init", method,
		"centers", centers,
	)
}

// LogIteration logs a single assignment round.
func (l *Logger) LogIteration(ctx context.Context, round, changed int, inertia float64) {
	l.DebugContext(ctx, "assignment round",
		"round", round,
		"changed", changed,
		"inertia", inertia,
	)
}

// LogCluster logs the end of a clustering run.
func (l *Logger) LogCluster(ctx context.Context, res *Result, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "clustering failed",
			"error", err,
		)
	case !res.Converged:
		l.WarnContext(ctx, "clustering stopped at iteration limit",
			"iterations", res.Iterations,
			"inertia", res.Inertia,
			"duration", res.Duration,
		)
	default:
		l.InfoContext(ctx, "clustering converged",
			"iterations", res.Iterations,
			"inertia", res.Inertia,
			"empty_clusters", len(res.EmptyClusters),
			"duration", res.Duration,
		)
	}
}
