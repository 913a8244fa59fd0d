package spatialhash

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with spatialhash-specific context.
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

// WithDimensions adds the index dimension count to the logger.
func (l *Logger) WithDimensions(dimensions int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimensions", dimensions),
	}
}

// WithPrecision adds the grid precision to the logger.
func (l *Logger) WithPrecision(precision int64) *Logger {
	return &Logger{
		Logger: l.Logger.With("precision", precision),
	}
}

// WithCellCount adds a cell count field to the logger (useful for radius
// operations that touch many cells).
func (l *Logger) WithCellCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("cells", count),
	}
}
