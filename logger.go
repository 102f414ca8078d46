package slotlist

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with slotlist-specific context.
// This provides structured logging with consistent field names.
//
// A nil *Logger is valid and discards everything, so containers can call the
// Log helpers without checking whether logging was configured.
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
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContainer adds a container field to the logger.
func (l *Logger) WithContainer(name string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{
		Logger: l.Logger.With("container", name),
	}
}

// LogGrow logs a capacity increase of a container's backing storage.
func (l *Logger) LogGrow(container string, from, to int) {
	if l == nil {
		return
	}
	l.Debug("storage grown",
		"container", container,
		"from", from,
		"to", to,
	)
}

// LogViolation logs a rejected operation. Such errors are caller bugs, not
// transient failures, so they are reported at warn level.
func (l *Logger) LogViolation(container, op string, err error) {
	if l == nil {
		return
	}
	l.Warn("operation rejected",
		"container", container,
		"op", op,
		"error", err,
	)
}
