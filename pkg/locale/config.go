package locale

import (
	"fmt"
	"slices"
	"sort"
	"sync/atomic"

	"golang.org/x/text/language"
)

// Baseline is the locale both current and fallback default to when supported.
const Baseline = "en"

// Availability reports which locales currently have a catalog loaded.
// *registry.Registry satisfies it.
type Availability interface {
	Available() []string
	Has(code string) bool
}

// Config holds the current and fallback locale selection, validated against
// a fixed supported set. Reads and writes are atomic; concurrent writers
// still race on which value wins.
type Config struct {
	supported    []string
	current      atomic.Pointer[string]
	fallback     atomic.Pointer[string]
	availability Availability
}

// New creates a configuration for the supported codes. Each code must be a
// well-formed BCP 47 tag.
func New(supported []string, opts ...Option) (*Config, error) {
	codes := slices.Clone(supported)
	sort.Strings(codes)
	codes = slices.Compact(codes)
	if len(codes) == 0 || (len(codes) == 1 && codes[0] == "") {
		return nil, ErrNoSupportedLocales
	}
	for _, code := range codes {
		if _, err := language.Parse(code); err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrMalformedTag, code, err)
		}
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	c := &Config{supported: codes, availability: o.availability}

	baseline := Baseline
	if !c.IsSupported(baseline) {
		baseline = codes[0]
	}

	current := baseline
	if o.current != "" {
		current = o.current
	}
	fallback := baseline
	if o.fallback != "" {
		fallback = o.fallback
	}

	if err := c.SetLocale(current); err != nil {
		return nil, err
	}
	if err := c.SetFallbackLocale(fallback); err != nil {
		return nil, err
	}
	return c, nil
}

// SetLocale selects the current locale. The locale does not need to be loaded.
func (c *Config) SetLocale(code string) error {
	if !c.IsSupported(code) {
		return c.invalid(code)
	}
	c.current.Store(&code)
	return nil
}

// SetFallbackLocale selects the locale consulted when a key is missing.
func (c *Config) SetFallbackLocale(code string) error {
	if !c.IsSupported(code) {
		return c.invalid(code)
	}
	c.fallback.Store(&code)
	return nil
}

// Locale returns the current locale.
func (c *Config) Locale() string {
	return *c.current.Load()
}

// FallbackLocale returns the fallback locale.
func (c *Config) FallbackLocale() string {
	return *c.fallback.Load()
}

// Supported returns the full static set, loaded or not.
func (c *Config) Supported() []string {
	return slices.Clone(c.supported)
}

// IsSupported reports whether code belongs to the supported set.
func (c *Config) IsSupported(code string) bool {
	_, found := slices.BinarySearch(c.supported, code)
	return found
}

// Available returns the supported locales that currently have a catalog.
func (c *Config) Available() []string {
	if c.availability == nil {
		return nil
	}
	var out []string
	for _, code := range c.availability.Available() {
		if c.IsSupported(code) {
			out = append(out, code)
		}
	}
	return out
}

// HasLocale reports whether a catalog is available for code.
func (c *Config) HasLocale(code string) bool {
	if c.availability == nil {
		return false
	}
	return c.availability.Has(code)
}

func (c *Config) invalid(code string) error {
	return &InvalidLocaleCodeError{Locale: code, Supported: c.Supported()}
}
