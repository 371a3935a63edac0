package formatter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/errmsg/pkg/contract"
	"github.com/dmitrymomot/errmsg/pkg/locale"
)

// Formatter builds user-facing validation error messages. Format never
// panics: resolver failures and contract mismatches degrade to the next
// rung of the ladder and are reported through the logger.
type Formatter struct {
	resolver   MessageResolver
	logger     Logger
	defaultKey string
	contract   bool
	strict     bool
	metrics    *Metrics
}

// New creates a formatter backed by resolver.
func New(resolver MessageResolver, opts ...Option) *Formatter {
	f := &Formatter{
		resolver:   resolver,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		defaultKey: DefaultKey,
		contract:   true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FormatContext is Format with the locale taken from ctx when opts.Locale is empty.
func (f *Formatter) FormatContext(ctx context.Context, opts Options) string {
	if opts.Locale == "" {
		if code, ok := locale.FromContext(ctx); ok {
			opts.Locale = code
		}
	}
	return f.Format(opts)
}

// Format renders opts. In Message mode Msg is returned as is. In FieldName
// mode content is taken from the first rung that yields any:
//
//  1. MessageKey, unless it resolves to itself
//  2. Fallback
//  3. the default key
//  4. nothing, in which case Msg is returned alone
//
// Example:
//
//	f.Format(formatter.Options{Msg: "Email", MessageKey: "string.invalid"})
//	// Returns: "Email is invalid"
func (f *Formatter) Format(opts Options) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = opts.Msg
			f.safeWarn("error message formatting panicked", "msg", opts.Msg, "key", opts.MessageKey, "error", fmt.Sprint(r))
		}
	}()

	if opts.MsgType == Message {
		f.metrics.observe(SourceRaw)
		return opts.Msg
	}

	key := f.fullKey(opts)
	content, src := f.content(key, opts)
	f.metrics.observe(src)

	if content == "" {
		f.logger.Warn("no error message content resolved",
			"msg", opts.Msg, "key", key, "group", opts.Group, "locale", opts.Locale)
		return opts.Msg
	}

	f.logger.Debug("error message formatted",
		"msg", opts.Msg, "key", key, "group", opts.Group, "params", opts.Params, "source", string(src))

	if opts.Msg == "" {
		return content
	}
	return opts.Msg + " " + content
}

func (f *Formatter) content(key string, opts Options) (string, Source) {
	if key != "" && f.allowed(key, opts.Params) {
		if s, ok := f.tryKey(key, opts.Params, opts.Locale); ok {
			return s, SourceKey
		}
	}

	if opts.Fallback != "" {
		return opts.Fallback, SourceFallback
	}

	if f.defaultKey != "" {
		if s, ok := f.tryKey(f.defaultKey, opts.Params, opts.Locale); ok {
			return s, SourceDefault
		}
	}

	return "", SourceEmpty
}

// tryKey resolves key, treating a result equal to the key as a miss.
func (f *Formatter) tryKey(key string, params map[string]any, code string) (s string, ok bool) {
	if f.resolver == nil {
		return "", false
	}
	defer func() {
		if r := recover(); r != nil {
			f.logger.Warn("message resolution failed", "key", key, "locale", code, "error", fmt.Sprint(r))
			s, ok = "", false
		}
	}()

	s = f.resolver.GetMessage(key, params, code)
	if s == "" || s == key {
		return "", false
	}
	return s, true
}

func (f *Formatter) allowed(key string, params map[string]any) bool {
	if !f.contract {
		return true
	}
	group, rel := contract.Split(key)
	if group == "" {
		return true
	}
	res := contract.Check(group, rel, params, f.strict)
	if !res.OK {
		f.logger.Warn("message params do not match contract", "key", key, "reason", res.Reason)
		return false
	}
	return true
}

func (f *Formatter) fullKey(opts Options) string {
	if opts.MessageKey == "" {
		return ""
	}
	if opts.Group != "" && !strings.Contains(opts.MessageKey, ".") {
		return contract.FullKey(opts.Group, opts.MessageKey)
	}
	return opts.MessageKey
}

func (f *Formatter) safeWarn(msg string, args ...any) {
	defer func() { _ = recover() }()
	f.logger.Warn(msg, args...)
}
