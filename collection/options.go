package collection

import (
	"github.com/rs/zerolog"
)

type Option func(o *options)

type options struct {
	logger zerolog.Logger
	base   Delegate
}

func defaultOptions() *options {
	return &options{
		logger: zerolog.Nop(),
	}
}

// WithLogger sets the logger used for debug traces. Defaults to a no-op
// logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDelegate sets the base behavior that receives the operation names
// the collection does not resolve by itself.
func WithDelegate(base Delegate) Option {
	return func(o *options) {
		o.base = base
	}
}
