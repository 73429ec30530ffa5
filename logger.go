package matchgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with matchgo-specific helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses a default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{Logger: slog.New(handler)}
}

// LogZip logs the outcome of an assignment operation.
func (l *Logger) LogZip(ctx context.Context, lenA, lenB, direct, fuzzy int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "zip failed",
			"len_a", lenA,
			"len_b", lenB,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "zip completed",
			"len_a", lenA,
			"len_b", lenB,
			"direct", direct,
			"fuzzy", fuzzy,
		)
	}
}
