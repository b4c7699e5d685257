package graphalgo

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with graphalgo-specific context.
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
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithRunID tags every record with the id of a traversal run.
func (l *Logger) WithRunID(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("run_id", id),
	}
}

// WithChunk adds a chunk index field to the logger.
func (l *Logger) WithChunk(index int) *Logger {
	return &Logger{
		Logger: l.Logger.With("chunk", index),
	}
}

// LogRun logs a finished traversal run.
func (l *Logger) LogRun(ctx context.Context, sources, chunks int, deliveries int64, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "msbfs run failed",
			"sources", sources,
			"chunks", chunks,
			"deliveries", deliveries,
			"duration", duration,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "msbfs run completed",
			"sources", sources,
			"chunks", chunks,
			"deliveries", deliveries,
			"duration", duration,
		)
	}
}

// LogChunk logs a finished chunk. busyWorkers is the number of chunks
// holding a slot of the shared worker budget when the chunk finished.
func (l *Logger) LogChunk(ctx context.Context, chunk, depth int, deliveries, busyWorkers int64, duration time.Duration) {
	l.WithChunk(chunk).DebugContext(ctx, "msbfs chunk completed",
		"depth", depth,
		"busy_workers", busyWorkers,
		"deliveries", deliveries,
		"duration", duration,
	)
}
