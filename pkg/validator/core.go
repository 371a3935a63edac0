package validator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/errmsg/pkg/formatter"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError is a single failed rule. Group, Key and Params address the
// localized message; Message is filled by Apply.
type ValidationError struct {
	Field string
	// Label is the human-readable field name. Field is used when empty.
	Label   string
	Group   string
	Key     string
	Params  map[string]any
	Message string
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// MessageFormatter renders localized error messages.
// *formatter.Formatter satisfies it.
type MessageFormatter interface {
	FormatContext(ctx context.Context, opts formatter.Options) string
}

// Apply executes rules and returns ValidationErrors for the failing ones, with
// each Message rendered by f in the locale carried by ctx. A nil f leaves the
// message key as the message.
func Apply(ctx context.Context, f MessageFormatter, rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if rule.Check == nil || rule.Check() {
			continue
		}
		e := rule.Error
		e.Message = message(ctx, f, e)
		errs = append(errs, e)
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

func message(ctx context.Context, f MessageFormatter, e ValidationError) string {
	key := e.Key
	if e.Group != "" && key != "" && !strings.Contains(key, ".") {
		key = e.Group + "." + key
	}
	if f == nil {
		return key
	}

	label := e.Label
	if label == "" {
		label = e.Field
	}
	return f.FormatContext(ctx, formatter.Options{
		Msg:        label,
		MsgType:    formatter.FieldName,
		Group:      e.Group,
		MessageKey: e.Key,
		Params:     e.Params,
	})
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
