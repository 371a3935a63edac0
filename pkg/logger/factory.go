package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/errmsg/pkg/locale"
)

// Format represents logger output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

type config struct {
	level      slog.Level
	format     Format
	output     io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
}

// Option configures logger creation.
type Option func(*config)

func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// ParseLevel converts a level name ("debug", "info", "warn", "error",
// optionally with an offset such as "warn+2") to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidLevel, name, err)
	}
	return l, nil
}

// ParseFormat validates a format name. Matching is case-insensitive.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatJSON, FormatText:
		return f, nil
	default:
		return "", fmt.Errorf("%w %q: must be %q or %q", ErrInvalidFormat, name, FormatJSON, FormatText)
	}
}

// WithLevelName sets the level from its name. An empty name is ignored.
// Panics for unknown names; use ParseLevel to validate untrusted input first.
func WithLevelName(name string) Option {
	return func(c *config) {
		if name == "" {
			return
		}
		l, err := ParseLevel(name)
		if err != nil {
			panic(err)
		}
		c.level = l
	}
}

// WithFormat sets output format. An empty format is ignored.
// Panics for unknown formats; use ParseFormat to validate untrusted input first.
func WithFormat(f Format) Option {
	return func(c *config) {
		if f == "" {
			return
		}
		parsed, err := ParseFormat(string(f))
		if err != nil {
			panic(err)
		}
		c.format = parsed
	}
}

// WithOutput sets the output destination. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds static attributes to every log record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// WithContextExtractors registers functions that inject attributes from context.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		c.extractors = append(c.extractors, extractors...)
	}
}

// WithRequestLocale adds the request-scoped locale (see locale.WithLocale)
// to every record logged with a context.
func WithRequestLocale() Option {
	return WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
		code, ok := locale.FromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return Locale(code), true
	})
}

// New creates a configured *slog.Logger. Defaults: JSON to stdout at INFO.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}

	var handler slog.Handler
	if cfg.format == FormatText {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	}

	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}

	return slog.New(NewContextHandler(handler, cfg.extractors...))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
