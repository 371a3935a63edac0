package resolver

import (
	"context"
	"io"
	"log/slog"

	"github.com/dmitrymomot/errmsg/pkg/catalog"
	"github.com/dmitrymomot/errmsg/pkg/locale"
)

// CatalogSource provides loaded catalogs by locale code.
// *registry.Registry satisfies it.
type CatalogSource interface {
	Catalog(code string) (*catalog.Catalog, bool)
}

// LocaleSource provides the current and fallback locale.
// *locale.Config satisfies it.
type LocaleSource interface {
	Locale() string
	FallbackLocale() string
}

// Resolver turns message keys into interpolated strings. It never fails:
// an absent catalog is a lookup miss, and a key missing everywhere resolves
// to itself.
type Resolver struct {
	catalogs    CatalogSource
	locales     LocaleSource
	errorFormat string
	logger      *slog.Logger
	logMissing  bool
}

// New creates a resolver reading catalogs and locale selection from the given sources.
func New(catalogs CatalogSource, locales LocaleSource, opts ...Option) *Resolver {
	r := &Resolver{
		catalogs:    catalogs,
		locales:     locales,
		errorFormat: DefaultErrorFormat,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GetMessage resolves key in locale (current when empty), then in the
// fallback locale, then falls back to key itself, and interpolates params.
//
// Example:
//
//	// With "string.tooShort": "is too short (minimum: {min} characters)"
//	msg := r.GetMessage("string.tooShort", map[string]any{"min": 5}, "")
//	// Returns: "is too short (minimum: 5 characters)"
func (r *Resolver) GetMessage(key string, params map[string]any, code string) string {
	tmpl, ok := r.Lookup(key, code)
	if !ok {
		if r.logMissing {
			r.logger.Warn("message not found", "locale", r.target(code), "key", key)
		}
		tmpl = key
	}
	return Interpolate(tmpl, params)
}

// GetMessageContext is GetMessage with the locale taken from ctx.
func (r *Resolver) GetMessageContext(ctx context.Context, key string, params map[string]any) string {
	code, _ := locale.FromContext(ctx)
	return r.GetMessage(key, params, code)
}

// Lookup returns the raw template for key from the target or fallback
// catalog. Unlike GetMessage it reports a miss instead of returning key.
func (r *Resolver) Lookup(key, code string) (string, bool) {
	target := r.target(code)
	if tmpl, ok := r.lookupIn(target, key); ok {
		return tmpl, true
	}
	if fb := r.fallback(); fb != "" && fb != target {
		return r.lookupIn(fb, key)
	}
	return "", false
}

// GetErrorMessage resolves key and renders it together with fieldName through
// the locale's error format. Locales define common.errorFormat to control
// word order; params are applied to the message only.
func (r *Resolver) GetErrorMessage(fieldName, key string, params map[string]any, code string) string {
	message := r.GetMessage(key, params, code)

	format, ok := r.Lookup(ErrorFormatKey, code)
	if !ok || format == "" {
		format = r.errorFormat
	}

	return Interpolate(format, map[string]any{
		"fieldName": fieldName,
		"message":   message,
	})
}

// MessageKeys returns every defined dot-path of the locale's catalog, sorted.
// It returns nil when the catalog is not loaded.
func (r *Resolver) MessageKeys(code string) []string {
	c, ok := r.catalog(r.target(code))
	if !ok {
		return nil
	}
	return c.Keys()
}

// IsMessageDefined reports whether key resolves to a string in the locale's
// own catalog. The fallback locale is not consulted.
func (r *Resolver) IsMessageDefined(key, code string) bool {
	_, ok := r.lookupIn(r.target(code), key)
	return ok
}

func (r *Resolver) lookupIn(code, key string) (string, bool) {
	c, ok := r.catalog(code)
	if !ok {
		return "", false
	}
	return c.Lookup(key)
}

func (r *Resolver) catalog(code string) (*catalog.Catalog, bool) {
	if r.catalogs == nil || code == "" {
		return nil, false
	}
	return r.catalogs.Catalog(code)
}

func (r *Resolver) target(code string) string {
	if code != "" || r.locales == nil {
		return code
	}
	return r.locales.Locale()
}

func (r *Resolver) fallback() string {
	if r.locales == nil {
		return ""
	}
	return r.locales.FallbackLocale()
}
