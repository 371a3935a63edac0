package locale

type options struct {
	current      string
	fallback     string
	availability Availability
}

// Option configures a Config.
type Option func(*options)

// WithDefault sets the initial current locale.
func WithDefault(code string) Option {
	return func(o *options) {
		o.current = code
	}
}

// WithFallback sets the initial fallback locale.
func WithFallback(code string) Option {
	return func(o *options) {
		o.fallback = code
	}
}

// WithAvailability connects the config to the source of loaded catalogs.
func WithAvailability(a Availability) Option {
	return func(o *options) {
		o.availability = a
	}
}
