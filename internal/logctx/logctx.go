// Package logctx carries a zerolog logger through context.Context.
//
// The report attaches a bucket field once per bucket so every event logged
// while that bucket is being listed is tagged with it:
//
//	ctx = logctx.WithStr(ctx, "bucket", name)
//	logctx.FromContext(ctx).Debug().Int("keys", n).Msg("page fetched")
package logctx

import (
	"context"

	"github.com/eunmann/s3du/pkg/logging"
	"github.com/rs/zerolog"
)

// loggerKey is the private key type for storing loggers in context.
type loggerKey struct{}

// WithLogger returns a new context with the given logger attached.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext extracts the logger from the context. If the context is nil
// or does not contain a logger, it returns the global logger from
// pkg/logging.
func FromContext(ctx context.Context) zerolog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey{}).(zerolog.Logger); ok {
			return logger
		}
	}
	return *logging.L()
}

// WithStr returns a new context with a logger that has the specified string field added.
func WithStr(ctx context.Context, key, value string) context.Context {
	logger := FromContext(ctx).With().Str(key, value).Logger()
	return WithLogger(ctx, logger)
}
