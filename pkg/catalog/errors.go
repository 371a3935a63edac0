package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCatalog is matched by every *InvalidCatalogError via errors.Is.
	ErrInvalidCatalog = errors.New("invalid message catalog")

	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	ErrTOMLParsingCancelled = errors.New("toml parsing cancelled")
	ErrFailedToParseTOML    = errors.New("failed to parse TOML content")

	ErrUnsupportedFormat = errors.New("unsupported catalog format")
	ErrEmptyDocument     = errors.New("catalog document is empty")
)

// InvalidCatalogError reports a payload that failed the catalog shape contract.
type InvalidCatalogError struct {
	Locale string
	Result ValidationResult
}

func (e *InvalidCatalogError) Error() string {
	msg := "invalid catalog"
	if e.Locale != "" {
		msg = fmt.Sprintf("invalid catalog for locale %q", e.Locale)
	}
	if e.Result.Path != "" {
		return fmt.Sprintf("%s at %q: %s", msg, e.Result.Path, e.Result.Reason)
	}
	return fmt.Sprintf("%s: %s", msg, e.Result.Reason)
}

func (e *InvalidCatalogError) Unwrap() error {
	return ErrInvalidCatalog
}
