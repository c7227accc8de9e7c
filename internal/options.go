package internal

import (
	"context"
	"log/slog"
)

// Option configures a Runtime.
type Option func(*Runtime)

// WithLogger sets the logger used for functor failures and aborted drips.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runtime) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithContext sets the context events are emitted with.
func WithContext(ctx context.Context) Option {
	return func(r *Runtime) {
		if ctx != nil {
			r.ctx = ctx
		}
	}
}
