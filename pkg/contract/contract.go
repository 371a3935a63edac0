package contract

import (
	"slices"
	"sort"
	"strings"
)

// Group names. Each group is a top-level section of every message catalog.
const (
	GroupCommon     = "common"
	GroupString     = "string"
	GroupNumber     = "number"
	GroupEmail      = "email"
	GroupPhone      = "phone"
	GroupUUID       = "uuid"
	GroupURL        = "url"
	GroupBoolean    = "boolean"
	GroupArray      = "array"
	GroupEnum       = "enum"
	GroupDate       = "date"
	GroupMoney      = "money"
	GroupPostalCode = "postalCode"
	GroupFileUpload = "fileUpload"
	GroupPagination = "pagination"
	GroupAddress    = "address"
	GroupNetwork    = "network"
	GroupUser       = "user"
	GroupRecord     = "record"
)

// table maps group -> key -> required placeholder names.
// Keys are relative to their group and may contain dots for nested entries.
var table = map[string]map[string][]string{
	GroupCommon: {
		"required":    nil,
		"invalid":     nil,
		"errorFormat": {"fieldName", "message"},
	},
	GroupString: {
		"required":       nil,
		"invalid":        nil,
		"empty":          nil,
		"mustBeString":   nil,
		"tooShort":       {"min"},
		"tooLong":        {"max"},
		"exactLength":    {"length"},
		"invalidPattern": nil,
	},
	GroupNumber: {
		"required":         nil,
		"invalid":          nil,
		"mustBeNumber":     nil,
		"mustBeInteger":    nil,
		"tooSmall":         {"min"},
		"tooLarge":         {"max"},
		"outOfRange":       {"min", "max"},
		"mustBePositive":   nil,
		"mustBeNegative":   nil,
		"mustBeMultipleOf": {"multiple"},
	},
	GroupEmail: {
		"required":         nil,
		"invalid":          nil,
		"tooLong":          {"max"},
		"domainNotAllowed": {"domain"},
		"disposable":       nil,
	},
	GroupPhone: {
		"required":           nil,
		"invalid":            nil,
		"invalidCountryCode": {"country"},
		"tooShort":           {"min"},
		"tooLong":            {"max"},
	},
	GroupUUID: {
		"required":       nil,
		"invalid":        nil,
		"invalidVersion": {"version"},
	},
	GroupURL: {
		"required":         nil,
		"invalid":          nil,
		"invalidProtocol":  {"protocols"},
		"domainNotAllowed": {"domain"},
		"tooLong":          {"max"},
	},
	GroupBoolean: {
		"required":    nil,
		"invalid":     nil,
		"mustBeTrue":  nil,
		"mustBeFalse": nil,
	},
	GroupArray: {
		"required":       nil,
		"invalid":        nil,
		"empty":          nil,
		"tooFew":         {"min"},
		"tooMany":        {"max"},
		"exactLength":    {"length"},
		"duplicateItems": nil,
	},
	GroupEnum: {
		"required": nil,
		"invalid":  {"options"},
	},
	GroupDate: {
		"required":      nil,
		"invalid":       nil,
		"tooEarly":      {"min"},
		"tooLate":       {"max"},
		"mustBeFuture":  nil,
		"mustBePast":    nil,
		"invalidFormat": {"format"},
	},
	GroupMoney: {
		"required":        nil,
		"invalid":         nil,
		"tooSmall":        {"min"},
		"tooLarge":        {"max"},
		"invalidCurrency": {"currency"},
		"tooManyDecimals": {"decimals"},
	},
	GroupPostalCode: {
		"required":          nil,
		"invalid":           nil,
		"invalidForCountry": {"country"},
	},
	GroupFileUpload: {
		"required":    nil,
		"invalid":     nil,
		"tooLarge":    {"maxSize"},
		"invalidType": {"allowedTypes"},
		"tooMany":     {"max"},
	},
	GroupPagination: {
		"invalidPage":  nil,
		"invalidLimit": {"max"},
		"invalidSort":  {"field"},
		"invalidOrder": nil,
	},
	GroupAddress: {
		"required":       nil,
		"invalid":        nil,
		"missingStreet":  nil,
		"missingCity":    nil,
		"missingCountry": nil,
		"invalidCountry": nil,
	},
	GroupNetwork: {
		"required":        nil,
		"invalid":         nil,
		"invalidIPv4":     nil,
		"invalidIPv6":     nil,
		"invalidCIDR":     nil,
		"invalidMAC":      nil,
		"invalidHostname": nil,
		"invalidPort":     {"min", "max"},
		"examples.ipv4":   nil,
		"examples.ipv6":   nil,
		"examples.mac":    nil,
	},
	GroupUser: {
		"required":         nil,
		"invalid":          nil,
		"invalidUsername":  nil,
		"usernameTooShort": {"min"},
		"usernameTooLong":  {"max"},
		"reservedUsername": nil,
		"weakPassword":     {"minLength"},
		"passwordMismatch": nil,
	},
	GroupRecord: {
		"required":    nil,
		"invalid":     nil,
		"notFound":    nil,
		"duplicate":   {"field"},
		"invalidKey":  nil,
		"tooManyKeys": {"max"},
	},
}

// Groups returns every governed group name in sorted order.
func Groups() []string {
	groups := make([]string, 0, len(table))
	for g := range table {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}

// Keys returns the legal keys of a group in sorted order, or nil for an unknown group.
func Keys(group string) []string {
	entries, ok := table[group]
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Params returns the placeholder names the key's template requires.
// The boolean is false when the group or key is not part of the contract.
func Params(group, key string) ([]string, bool) {
	entries, ok := table[group]
	if !ok {
		return nil, false
	}
	params, ok := entries[key]
	if !ok {
		return nil, false
	}
	return slices.Clone(params), true
}

// Has reports whether the group governs the key.
func Has(group, key string) bool {
	_, ok := Params(group, key)
	return ok
}

// IsGroup reports whether the contract governs the group.
func IsGroup(group string) bool {
	_, ok := table[group]
	return ok
}

// FullKey joins a group and a relative key into a catalog dot-path.
func FullKey(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}

// Split breaks a catalog dot-path into its group and the key relative to it.
func Split(fullKey string) (group, key string) {
	group, key, found := strings.Cut(fullKey, ".")
	if !found {
		return "", fullKey
	}
	return group, key
}

// FullKeys returns every governed dot-path in sorted order.
func FullKeys() []string {
	var keys []string
	for _, g := range Groups() {
		for _, k := range Keys(g) {
			keys = append(keys, FullKey(g, k))
		}
	}
	return keys
}
