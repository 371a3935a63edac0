package locale

import "context"

type localeContextKey struct{}

// WithLocale returns a context carrying a request-scoped locale.
func WithLocale(ctx context.Context, code string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, code)
}

// FromContext returns the request-scoped locale, if any.
func FromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	code, _ := ctx.Value(localeContextKey{}).(string)
	return code, code != ""
}
