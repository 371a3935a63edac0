package registry

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedLocale is matched by every *UnsupportedLocaleError via errors.Is.
	ErrUnsupportedLocale = errors.New("unsupported locale")
	// ErrLoadFailed is matched by every *LoadError via errors.Is.
	ErrLoadFailed = errors.New("failed to load locale")
	// ErrLoaderPanic reports a loader that panicked instead of returning an error.
	ErrLoaderPanic = errors.New("loader panicked")

	ErrNilCatalog        = errors.New("catalog is nil")
	ErrNilLoader         = errors.New("loader is nil")
	ErrEmptyLocale       = errors.New("locale code is empty")
	ErrMissingS3Bucket   = errors.New("s3 bucket is required")
	ErrMissingS3Region   = errors.New("s3 region is required")
	ErrFailedToLoadAWS   = errors.New("failed to load AWS configuration")
	ErrNilRedisClient    = errors.New("redis client is nil")
	ErrMissingRedisURL   = errors.New("redis url is required")
	ErrRedisNotReady     = errors.New("redis did not become ready")
	ErrNilS3Client       = errors.New("s3 client is nil")
	ErrUnsupportedFormat = errors.New("unsupported catalog format")

	ErrFailedToParseRedisURL = errors.New("failed to parse redis url")
)

// UnsupportedLocaleError is returned when no loader is registered for a locale.
type UnsupportedLocaleError struct {
	Locale    string
	Supported []string
}

func (e *UnsupportedLocaleError) Error() string {
	return fmt.Sprintf("unsupported locale %q (supported: %s)", e.Locale, strings.Join(e.Supported, ", "))
}

func (e *UnsupportedLocaleError) Unwrap() error {
	return ErrUnsupportedLocale
}

// LoadError wraps any loader failure other than an invalid payload.
type LoadError struct {
	Locale string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load locale %q: %v", e.Locale, e.Err)
}

func (e *LoadError) Unwrap() []error {
	return []error{ErrLoadFailed, e.Err}
}
