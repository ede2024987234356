// Package ctxlog provides functionality for adding/extracting a zap Logger
// to/from a Context object.
package ctxlog

import (
	"context"

	"go.uber.org/zap"
)

type loggerKeyType struct{}

var (
	// loggerKey is a unique key to embed a zap.Logger in a Context.
	loggerKey = loggerKeyType{}

	// nop logger to ensure L always returns something.
	nop = zap.NewNop()
)

// WithLogger embeds logger in the given Context.
// Later the logger can be obtained by L.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithFields adds the given fields to the Logger embedded in ctx.
func WithFields(ctx context.Context, fields ...zap.Field) context.Context {
	return WithLogger(ctx, L(ctx).With(fields...))
}

// WithName adds the given name to the Logger embedded in ctx.
func WithName(ctx context.Context, name string) context.Context {
	return WithLogger(ctx, L(ctx).Named(name))
}

// L either returns an embedded Logger from the context
// or a nop Logger if nothing is embedded.
func L(ctx context.Context) *zap.Logger {
	if l, ok := FromContext(ctx); ok {
		return l
	}
	return nop
}

// FromContext returns the Logger embedded in ctx, if any.
func FromContext(ctx context.Context) (*zap.Logger, bool) {
	l, ok := ctx.Value(loggerKey).(*zap.Logger)
	return l, ok
}
