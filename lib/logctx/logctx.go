// Package logctx carries a slog.Logger in a context.Context so the command
// layer does not have to thread a logger argument through every call.
package logctx

import (
	"context"
	"log/slog"
	"os"
)

type contextKey int

const (
	loggerKey contextKey = iota
)

// WithLogger returns a new context with the provided logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// From retrieves the logger from the context. When no logger is attached it
// falls back to a text logger on stderr rather than panicking, so library
// code stays usable from tests that build bare contexts.
func From(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}
