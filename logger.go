package dimgo

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/hupe1980/dimgo/dimension"
)

// Logger wraps slog.Logger with dimgo-specific context.
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

// NewJSONLogger creates a Logger that writes JSON-formatted logs to w.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that writes human-readable text logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, nil))
}

// WithExpression adds an expression field to the logger.
func (l *Logger) WithExpression(expr string) *Logger {
	return &Logger{
		Logger: l.Logger.With("expr", expr),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(v dimension.Vector) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", v.String()),
	}
}

// LogResolve logs an expression resolution.
func (l *Logger) LogResolve(ctx context.Context, expr string, v dimension.Vector, cached bool, err error) {
	if err != nil {
		l.DebugContext(ctx, "resolve failed",
			"expr", expr,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "resolve completed",
			"expr", expr,
			"dimension", v.String(),
			"cached", cached,
		)
	}
}

// LogCheck logs a dimension check between two expressions.
func (l *Logger) LogCheck(ctx context.Context, want, got string, err error) {
	if err != nil {
		l.InfoContext(ctx, "dimension check failed",
			"want", want,
			"got", got,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "dimension check passed",
			"want", want,
			"got", got,
		)
	}
}

// LogCatalog logs a catalog load.
func (l *Logger) LogCatalog(ctx context.Context, source string, entries int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "catalog load failed",
			"source", source,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "catalog loaded",
			"source", source,
			"entries", entries,
		)
	}
}
