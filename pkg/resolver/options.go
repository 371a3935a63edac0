package resolver

import (
	"log/slog"
)

// DefaultErrorFormat is used when no catalog defines common.errorFormat.
const DefaultErrorFormat = "{fieldName} {message}"

// ErrorFormatKey is the catalog key that lets a locale control word order.
const ErrorFormatKey = "common.errorFormat"

// Option configures a Resolver.
type Option func(*Resolver)

// WithErrorFormat overrides the built-in error-format template.
func WithErrorFormat(format string) Option {
	return func(r *Resolver) {
		if format != "" {
			r.errorFormat = format
		}
	}
}

// WithLogger sets the logger used for missing message reports.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMissingMessagesLogging controls whether keys missing from both the
// target and the fallback catalog are logged. Default is false.
func WithMissingMessagesLogging(enabled bool) Option {
	return func(r *Resolver) {
		r.logMissing = enabled
	}
}
