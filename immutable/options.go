package immutable

import (
	"go.uber.org/zap"

	"github.com/on-the-ground/immutable_ive_go/delegate"
)

// Option configures where a wrapper finds its cached operations.
// Options travel with the wrapper: every wrapper derived from it reuses them.
type Option func(*options)

type options struct {
	registry *delegate.Registry
	store    any
	builder  any
	logger   *zap.Logger
}

// WithRegistry selects the registry that supplies the cache, builder, logger and observer.
func WithRegistry(r *delegate.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithStore injects the store of generated operations, bypassing the registry cache.
func WithStore[T any](s delegate.Store[T]) Option {
	return func(o *options) {
		o.store = s
	}
}

// WithBuilder injects the builder used on cache misses, bypassing the registered one.
func WithBuilder[T any](b delegate.Builder[T]) Option {
	return func(o *options) {
		o.builder = b
	}
}

// WithLogger overrides the registry logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
