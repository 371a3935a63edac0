package errmsg

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/errmsg/pkg/registry"
)

type options struct {
	loaders          map[string]registry.Loader
	embedded         bool
	supported        []string
	defaultLocale    string
	fallbackLocale   string
	logger           *slog.Logger
	registerer       prometheus.Registerer
	metricsNamespace string
	defaultKey       string
	errorFormat      string
	strictParams     bool
	concurrency      int
	logMissing       bool

	s3Client    registry.S3Client
	redisClient registry.RedisClient
}

// Option configures a Manager.
type Option func(*options)

// WithLoader registers the loader for one locale.
func WithLoader(code string, l registry.Loader) Option {
	return func(o *options) {
		if code != "" && l != nil {
			o.loaders[code] = l
		}
	}
}

// WithLoaders registers a loader per locale.
func WithLoaders(loaders map[string]registry.Loader) Option {
	return func(o *options) {
		for code, l := range loaders {
			WithLoader(code, l)(o)
		}
	}
}

// WithEmbeddedDefaults registers the bundled en/es/fr catalogs for every
// locale that has no explicit loader.
func WithEmbeddedDefaults() Option {
	return func(o *options) {
		o.embedded = true
	}
}

// WithSupportedLocales fixes the set of selectable locales. Defaults to the
// locales that have a loader.
func WithSupportedLocales(codes ...string) Option {
	return func(o *options) {
		o.supported = append(o.supported, codes...)
	}
}

// WithDefaultLocale sets the initial current locale.
func WithDefaultLocale(code string) Option {
	return func(o *options) {
		o.defaultLocale = code
	}
}

// WithFallbackLocale sets the initial fallback locale.
func WithFallbackLocale(code string) Option {
	return func(o *options) {
		o.fallbackLocale = code
	}
}

// WithLogger sets the logger shared by every component.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics registers catalog and formatter metrics on reg.
func WithMetrics(reg prometheus.Registerer, namespace string) Option {
	return func(o *options) {
		o.registerer = reg
		o.metricsNamespace = namespace
	}
}

// WithDefaultKey overrides the formatter's generic default message key.
func WithDefaultKey(key string) Option {
	return func(o *options) {
		o.defaultKey = key
	}
}

// WithErrorFormat overrides the built-in "{fieldName} {message}" template.
func WithErrorFormat(format string) Option {
	return func(o *options) {
		o.errorFormat = format
	}
}

// WithStrictParams rejects params a message key does not declare.
func WithStrictParams(strict bool) Option {
	return func(o *options) {
		o.strictParams = strict
	}
}

// WithConcurrency bounds concurrent catalog loads in LoadLocales.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithMissingMessagesLogging logs keys that resolve nowhere.
func WithMissingMessagesLogging(enabled bool) Option {
	return func(o *options) {
		o.logMissing = enabled
	}
}

// WithS3Client makes NewFromConfig use client instead of dialing AWS.
func WithS3Client(client registry.S3Client) Option {
	return func(o *options) {
		o.s3Client = client
	}
}

// WithRedisClient makes NewFromConfig use client instead of connecting.
func WithRedisClient(client registry.RedisClient) Option {
	return func(o *options) {
		o.redisClient = client
	}
}
