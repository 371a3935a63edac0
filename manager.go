package errmsg

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/errmsg/pkg/catalog"
	"github.com/dmitrymomot/errmsg/pkg/catalog/locales"
	"github.com/dmitrymomot/errmsg/pkg/formatter"
	"github.com/dmitrymomot/errmsg/pkg/locale"
	"github.com/dmitrymomot/errmsg/pkg/logger"
	"github.com/dmitrymomot/errmsg/pkg/registry"
	"github.com/dmitrymomot/errmsg/pkg/resolver"
)

// Manager wires a catalog registry, locale configuration, resolver and
// formatter into one independent instance.
type Manager struct {
	registry  *registry.Registry
	locales   *locale.Config
	resolver  *resolver.Resolver
	formatter *formatter.Formatter

	initialLocale   string
	initialFallback string
}

// New creates a Manager. At least one loader (or WithEmbeddedDefaults) or an
// explicit supported set is required. No catalog is loaded until LoadLocale.
func New(opts ...Option) (*Manager, error) {
	o := &options{
		loaders: make(map[string]registry.Loader),
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.embedded {
		fsLoader, err := registry.NewFSLoader(locales.FS(), locales.Pattern)
		if err != nil {
			return nil, err
		}
		for _, code := range locales.Supported() {
			if _, ok := o.loaders[code]; !ok {
				o.loaders[code] = fsLoader
			}
		}
	}

	regOpts := []registry.Option{
		registry.WithLoaders(o.loaders),
		registry.WithLogger(o.logger.With(logger.Component("registry"))),
		registry.WithConcurrency(o.concurrency),
	}
	fmtOpts := []formatter.Option{
		formatter.WithLogger(o.logger.With(logger.Component("formatter"))),
		formatter.WithDefaultKey(o.defaultKey),
		formatter.WithStrictParams(o.strictParams),
	}
	if o.registerer != nil {
		rm, err := registry.NewMetrics(o.registerer, o.metricsNamespace)
		if err != nil {
			return nil, fmt.Errorf("register catalog metrics: %w", err)
		}
		fm, err := formatter.NewMetrics(o.registerer, o.metricsNamespace)
		if err != nil {
			return nil, fmt.Errorf("register formatter metrics: %w", err)
		}
		regOpts = append(regOpts, registry.WithMetrics(rm))
		fmtOpts = append(fmtOpts, formatter.WithMetrics(fm))
	}
	reg := registry.New(regOpts...)

	supported := o.supported
	if len(supported) == 0 {
		supported = reg.Supported()
	}
	if len(supported) == 0 {
		return nil, ErrNoLocales
	}

	cfg, err := locale.New(supported,
		locale.WithDefault(o.defaultLocale),
		locale.WithFallback(o.fallbackLocale),
		locale.WithAvailability(reg),
	)
	if err != nil {
		return nil, err
	}

	res := resolver.New(reg, cfg,
		resolver.WithErrorFormat(o.errorFormat),
		resolver.WithLogger(o.logger.With(logger.Component("resolver"))),
		resolver.WithMissingMessagesLogging(o.logMissing),
	)

	return &Manager{
		registry:        reg,
		locales:         cfg,
		resolver:        res,
		formatter:       formatter.New(res, fmtOpts...),
		initialLocale:   cfg.Locale(),
		initialFallback: cfg.FallbackLocale(),
	}, nil
}

// LoadLocale fetches, validates and registers the catalog for code.
func (m *Manager) LoadLocale(ctx context.Context, code string) error {
	return m.registry.LoadLocale(ctx, code)
}

// LoadLocales loads codes concurrently and joins every failure.
func (m *Manager) LoadLocales(ctx context.Context, codes ...string) error {
	return m.registry.LoadLocales(ctx, codes...)
}

// EnsureLocaleLoaded loads code unless it is already available.
func (m *Manager) EnsureLocaleLoaded(ctx context.Context, code string) error {
	return m.registry.EnsureLocaleLoaded(ctx, code)
}

// RegisterMessages registers an already built catalog under its own locale.
func (m *Manager) RegisterMessages(c *catalog.Catalog) error {
	return m.registry.RegisterMessages(c)
}

// RegisterMessagesMap validates raw and registers it under its own locale.
func (m *Manager) RegisterMessagesMap(raw map[string]any) error {
	c, err := catalog.New(raw)
	if err != nil {
		return err
	}
	return m.registry.RegisterMessages(c)
}

func (m *Manager) SetLocale(code string) error         { return m.locales.SetLocale(code) }
func (m *Manager) SetFallbackLocale(code string) error { return m.locales.SetFallbackLocale(code) }
func (m *Manager) Locale() string                      { return m.locales.Locale() }
func (m *Manager) FallbackLocale() string              { return m.locales.FallbackLocale() }
func (m *Manager) SupportedLocales() []string          { return m.locales.Supported() }
func (m *Manager) AvailableLocales() []string          { return m.locales.Available() }
func (m *Manager) HasLocale(code string) bool          { return m.locales.HasLocale(code) }

// GetMessage resolves key in code (current locale when empty).
func (m *Manager) GetMessage(key string, params map[string]any, code string) string {
	return m.resolver.GetMessage(key, params, code)
}

// GetErrorMessage renders fieldName and key through the locale's error format.
func (m *Manager) GetErrorMessage(fieldName, key string, params map[string]any, code string) string {
	return m.resolver.GetErrorMessage(fieldName, key, params, code)
}

func (m *Manager) MessageKeys(code string) []string {
	return m.resolver.MessageKeys(code)
}

func (m *Manager) IsMessageDefined(key, code string) bool {
	return m.resolver.IsMessageDefined(key, code)
}

// FormatErrorMessage builds a validation error message. It never panics.
func (m *Manager) FormatErrorMessage(opts formatter.Options) string {
	return m.formatter.Format(opts)
}

// FormatErrorMessageContext is FormatErrorMessage using the request locale from ctx.
func (m *Manager) FormatErrorMessageContext(ctx context.Context, opts formatter.Options) string {
	return m.formatter.FormatContext(ctx, opts)
}

// Middleware stores each request's negotiated locale in its context.
func (m *Manager) Middleware(opts ...locale.ExtractorOption) func(http.Handler) http.Handler {
	return locale.Middleware(m.locales, locale.NewExtractor(m.locales.Supported(), opts...))
}

// Reset drops every loaded catalog and restores the initial locale selection.
// Loaders are kept. Intended for test harnesses only.
func (m *Manager) Reset() {
	m.registry.Reset()
	_ = m.locales.SetLocale(m.initialLocale)
	_ = m.locales.SetFallbackLocale(m.initialFallback)
}

func (m *Manager) Registry() *registry.Registry    { return m.registry }
func (m *Manager) Locales() *locale.Config         { return m.locales }
func (m *Manager) Resolver() *resolver.Resolver    { return m.resolver }
func (m *Manager) Formatter() *formatter.Formatter { return m.formatter }
