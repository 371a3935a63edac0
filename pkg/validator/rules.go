package validator

import (
	"fmt"
	"net"
	"net/mail"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dmitrymomot/errmsg/pkg/contract"
)

func rule(field, group, key string, params map[string]any, check func() bool) Rule {
	return Rule{
		Check: check,
		Error: ValidationError{Field: field, Group: group, Key: key, Params: params},
	}
}

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return rule(field, contract.GroupString, "required", nil, func() bool {
		return strings.TrimSpace(value) != ""
	})
}

// MinLen validates that a string has at least min characters.
func MinLen(field, value string, min int) Rule {
	return rule(field, contract.GroupString, "tooShort", map[string]any{"min": min}, func() bool {
		return utf8.RuneCountInString(value) >= min
	})
}

// MaxLen validates that a string has at most max characters.
func MaxLen(field, value string, max int) Rule {
	return rule(field, contract.GroupString, "tooLong", map[string]any{"max": max}, func() bool {
		return utf8.RuneCountInString(value) <= max
	})
}

// Email validates an RFC 5322 address with a dotted domain.
func Email(field, value string) Rule {
	return rule(field, contract.GroupEmail, "invalid", nil, func() bool {
		if strings.TrimSpace(value) == "" {
			return false
		}
		addr, err := mail.ParseAddress(value)
		if err != nil || addr.Address != value {
			return false
		}
		local, domain, ok := strings.Cut(addr.Address, "@")
		if !ok || local == "" {
			return false
		}
		if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
			return false
		}
		for part := range strings.SplitSeq(domain, ".") {
			if part == "" {
				return false
			}
		}
		return true
	})
}

// MinNum validates that value is at least min.
func MinNum[T Numeric](field string, value, min T) Rule {
	return rule(field, contract.GroupNumber, "tooSmall", map[string]any{"min": min}, func() bool {
		return value >= min
	})
}

// MaxNum validates that value is at most max.
func MaxNum[T Numeric](field string, value, max T) Rule {
	return rule(field, contract.GroupNumber, "tooLarge", map[string]any{"max": max}, func() bool {
		return value <= max
	})
}

// UUID validates the canonical 36-character UUID form.
func UUID(field, value string) Rule {
	return rule(field, contract.GroupUUID, "invalid", nil, func() bool {
		if len(value) != 36 {
			return false
		}
		_, err := uuid.Parse(value)
		return err == nil
	})
}

// UUIDVersion validates a canonical UUID of the given version.
func UUIDVersion(field, value string, version int) Rule {
	return rule(field, contract.GroupUUID, "invalidVersion", map[string]any{"version": version}, func() bool {
		if len(value) != 36 {
			return false
		}
		id, err := uuid.Parse(value)
		return err == nil && int(id.Version()) == version
	})
}

// IPv4 validates a dotted-quad IPv4 address.
func IPv4(field, value string) Rule {
	return rule(field, contract.GroupNetwork, "invalidIPv4", nil, func() bool {
		ip := net.ParseIP(value)
		return ip != nil && ip.To4() != nil && !strings.Contains(value, ":")
	})
}

// OneOf validates that value is one of options.
func OneOf[T comparable](field string, value T, options []T) Rule {
	names := make([]string, len(options))
	for i, o := range options {
		names[i] = fmt.Sprint(o)
	}
	return rule(field, contract.GroupEnum, "invalid", map[string]any{"options": strings.Join(names, ", ")}, func() bool {
		return slices.Contains(options, value)
	})
}

// Label sets the human-readable field name used in the message.
func (r Rule) Label(label string) Rule {
	r.Error.Label = label
	return r
}
