package locale

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidLocaleCode is matched by every *InvalidLocaleCodeError via errors.Is.
	ErrInvalidLocaleCode = errors.New("invalid locale code")

	ErrNoSupportedLocales = errors.New("at least one supported locale is required")
	ErrMalformedTag       = errors.New("malformed locale tag")
)

// InvalidLocaleCodeError is returned when a code outside the supported set is selected.
type InvalidLocaleCodeError struct {
	Locale    string
	Supported []string
}

func (e *InvalidLocaleCodeError) Error() string {
	return fmt.Sprintf("invalid locale code %q (supported: %s)", e.Locale, strings.Join(e.Supported, ", "))
}

func (e *InvalidLocaleCodeError) Unwrap() error {
	return ErrInvalidLocaleCode
}
