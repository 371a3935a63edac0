package locale

import (
	"net/http"
	"strings"
)

// maxLangCodeLength is the longest code accepted from cookies and query params (RFC 5646).
const maxLangCodeLength = 35

// Extractor determines a locale code from an incoming request.
// It returns "" when the request carries no usable preference.
type Extractor func(r *http.Request) string

// ExtractorConfig holds configuration for the request extractor.
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
}

// ExtractorOption configures the request extractor.
type ExtractorOption func(*ExtractorConfig)

// WithCookieName sets the cookie checked for a locale preference.
func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name == "" {
			return
		}
		c.CookieName = name
	}
}

// WithQueryParamName sets the query parameter checked for a locale preference.
func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name == "" {
			return
		}
		c.QueryParamName = name
	}
}

// NewExtractor builds an extractor restricted to supported codes. Sources are
// checked in order: cookie, query parameter, Accept-Language header.
func NewExtractor(supported []string, opts ...ExtractorOption) Extractor {
	cfg := &ExtractorConfig{CookieName: "lang", QueryParamName: "lang"}
	for _, opt := range opts {
		opt(cfg)
	}

	explicit := func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" || len(v) > maxLangCodeLength {
			return ""
		}
		return Match(v, supported)
	}

	return func(r *http.Request) string {
		if cfg.CookieName != "" {
			if cookie, err := r.Cookie(cfg.CookieName); err == nil {
				if code := explicit(cookie.Value); code != "" {
					return code
				}
			}
		}

		if cfg.QueryParamName != "" {
			if code := explicit(r.URL.Query().Get(cfg.QueryParamName)); code != "" {
				return code
			}
		}

		return Negotiate(r.Header.Get("Accept-Language"), supported, "")
	}
}

// Middleware stores the request locale in the request context, falling back
// to the config's current locale when the request expresses no supported
// preference. A nil extractor uses NewExtractor with the config's supported set.
func Middleware(cfg *Config, extr Extractor) func(http.Handler) http.Handler {
	if extr == nil {
		extr = NewExtractor(cfg.Supported())
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code := extr(r)
			if code == "" || !cfg.IsSupported(code) {
				code = cfg.Locale()
			}
			next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), code)))
		})
	}
}
