package formatter

// DefaultKey is the generic message used when neither the requested key nor
// a fallback yields content.
const DefaultKey = "string.invalid"

// Option configures a Formatter.
type Option func(*Formatter)

// WithLogger sets the diagnostics logger. Defaults to a discard logger.
func WithLogger(logger Logger) Option {
	return func(f *Formatter) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithDefaultKey overrides the generic default message key.
func WithDefaultKey(key string) Option {
	return func(f *Formatter) {
		if key != "" {
			f.defaultKey = key
		}
	}
}

// WithContract toggles the parameter-shape check performed before a key is
// resolved. Enabled by default.
func WithContract(enabled bool) Option {
	return func(f *Formatter) {
		f.contract = enabled
	}
}

// WithStrictParams makes the contract check reject params the key does not declare.
func WithStrictParams(strict bool) Option {
	return func(f *Formatter) {
		f.strict = strict
	}
}

// WithMetrics records which ladder rung produced each message.
func WithMetrics(m *Metrics) Option {
	return func(f *Formatter) {
		f.metrics = m
	}
}
