package registry

import (
	"log/slog"
)

// Option configures a Registry.
type Option func(*Registry)

// WithLoader registers l for code. Nil loaders are ignored.
func WithLoader(code string, l Loader) Option {
	return func(r *Registry) {
		if code != "" && l != nil {
			r.loaders[code] = l
		}
	}
}

// WithLoaders registers every loader in m.
func WithLoaders(m map[string]Loader) Option {
	return func(r *Registry) {
		for code, l := range m {
			WithLoader(code, l)(r)
		}
	}
}

// WithLogger sets the logger used for load events.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetrics records load outcomes in m.
func WithMetrics(m *Metrics) Option {
	return func(r *Registry) {
		r.metrics = m
	}
}

// WithConcurrency bounds how many loads LoadLocales runs at once.
// Zero or negative means unbounded.
func WithConcurrency(n int) Option {
	return func(r *Registry) {
		r.concurrency = n
	}
}
