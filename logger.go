package cohort

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with cohort-specific context.
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

// LogSearch logs a search operation.
func (l *Logger) LogSearch(ctx context.Context, kind, query string, matches int) {
	l.DebugContext(ctx, "search completed",
		"kind", kind,
		"query", query,
		"matches", matches,
	)
}

// LogSort logs a sort operation.
func (l *Logger) LogSort(ctx context.Context, keys int, count int) {
	l.DebugContext(ctx, "sort completed",
		"keys", keys,
		"count", count,
	)
}

// LogAnalysis logs an analytics operation.
func (l *Logger) LogAnalysis(ctx context.Context, op string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "analysis failed",
			"op", op,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "analysis completed",
		"op", op,
	)
}

// LogTraining logs a model training operation.
func (l *Logger) LogTraining(ctx context.Context, model string, examples int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "training failed",
			"model", model,
			"examples", examples,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "training completed",
		"model", model,
		"examples", examples,
	)
}

// LogCluster logs a clustering operation.
func (l *Logger) LogCluster(ctx context.Context, algorithm string, clusters int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "clustering failed",
			"algorithm", algorithm,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "clustering completed",
		"algorithm", algorithm,
		"clusters", clusters,
	)
}
