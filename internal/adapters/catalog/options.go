package catalog

import "github.com/okian/weekender/pkg/logger"

// Option applies a configuration option to the Loader.
type Option func(*Loader)

// WithLogger sets the logger used for load progress and dropped entries.
func WithLogger(l logger.Logger) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.log = l
		}
	}
}

// WithIDGenerator replaces the UUID generator for entries without an ID.
func WithIDGenerator(fn func() string) Option {
	return func(ld *Loader) {
		if fn != nil {
			ld.newID = fn
		}
	}
}
