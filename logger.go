package fixgo

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with fixgo-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithKey adds a checkpoint/result key field to the logger.
func (l *Logger) WithKey(key string) *Logger {
	return &Logger{
		Logger: l.Logger.With("key", key),
	}
}

// WithNetwork adds network size and sample index fields to the logger.
func (l *Logger) WithNetwork(n, sample int) *Logger {
	return &Logger{
		Logger: l.Logger.With("n", n, "sample", sample),
	}
}

// WithWorkers adds a worker-count field to the logger.
func (l *Logger) WithWorkers(workers int) *Logger {
	return &Logger{
		Logger: l.Logger.With("workers", workers),
	}
}

// LogRun logs the outcome of one solver run.
func (l *Logger) LogRun(ctx context.Context, key string, status string, found int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "solver run failed",
			"key", key,
			"status", status,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "solver run completed",
			"key", key,
			"status", status,
			"found", found,
		)
	}
}

// LogCheckpoint logs a checkpoint write.
func (l *Logger) LogCheckpoint(ctx context.Context, key string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "checkpoint write failed",
			"key", key,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "checkpoint written",
			"key", key,
		)
	}
}

// LogBatch logs the completion of an orchestrated batch.
func (l *Logger) LogBatch(ctx context.Context, key string, jobs, failed int, elapsed time.Duration) {
	if failed > 0 {
		l.WarnContext(ctx, "batch completed with failures",
			"key", key,
			"jobs", jobs,
			"failed", failed,
			"elapsed", elapsed,
		)
	} else {
		l.InfoContext(ctx, "batch completed",
			"key", key,
			"jobs", jobs,
			"elapsed", elapsed,
		)
	}
}

// LogFrontier logs one step of a frontier discovery loop.
func (l *Logger) LogFrontier(ctx context.Context, step int, status string, found, frontier int) {
	l.DebugContext(ctx, "frontier step",
		"step", step,
		"status", status,
		"found", found,
		"frontier", frontier,
	)
}
