package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/dmitrymomot/errmsg/pkg/contract"
)

// LocaleField is the root key holding the catalog's own locale code.
const LocaleField = "locale"

// keyPattern is the shape of a single path segment. Dots separate segments,
// so a key containing one could never be looked up.
const keyPattern = `^[^.]+$`

// ValidationResult is the structured outcome of a catalog shape check.
// Path is the dot-path of the first offending node when one can be located.
type ValidationResult struct {
	OK     bool
	Reason string
	Path   string
}

func valid() ValidationResult { return ValidationResult{OK: true} }

func invalid(path, format string, args ...any) ValidationResult {
	return ValidationResult{Reason: fmt.Sprintf(format, args...), Path: path}
}

// RequiredGroups lists the top-level groups every catalog must define.
func RequiredGroups() []string {
	return contract.Groups()
}

var resolvedSchema = sync.OnceValues(func() (*jsonschema.Resolved, error) {
	return schema().Resolve(&jsonschema.ResolveOptions{})
})

// schema describes a catalog document: a string locale, every required group
// as an object, and arbitrarily nested objects whose leaves are strings.
func schema() *jsonschema.Schema {
	groups := RequiredGroups()
	props := map[string]*jsonschema.Schema{
		LocaleField: {Type: "string"},
	}
	for _, g := range groups {
		props[g] = &jsonschema.Schema{Ref: "#/$defs/group"}
	}

	return &jsonschema.Schema{
		Type:                 "object",
		Required:             append([]string{LocaleField}, groups...),
		Properties:           props,
		PropertyNames:        &jsonschema.Schema{Pattern: keyPattern},
		AdditionalProperties: &jsonschema.Schema{Ref: "#/$defs/node"},
		Defs: map[string]*jsonschema.Schema{
			"node": {
				Types:                []string{"string", "object"},
				PropertyNames:        &jsonschema.Schema{Pattern: keyPattern},
				AdditionalProperties: &jsonschema.Schema{Ref: "#/$defs/node"},
			},
			"group": {
				Type:                 "object",
				PropertyNames:        &jsonschema.Schema{Pattern: keyPattern},
				AdditionalProperties: &jsonschema.Schema{Ref: "#/$defs/node"},
			},
		},
	}
}

// Validate checks raw against the catalog shape contract. When expectedLocale
// is not empty the document's locale field must equal it.
func Validate(raw map[string]any, expectedLocale string) ValidationResult {
	if raw == nil {
		return invalid("", "catalog is nil")
	}

	rs, err := resolvedSchema()
	if err != nil {
		return invalid("", "catalog schema: %v", err)
	}

	if err := rs.Validate(normalize(raw)); err != nil {
		res := locate(raw)
		if res.OK {
			return invalid("", "%v", err)
		}
		return res
	}

	code, _ := raw[LocaleField].(string)
	if code == "" {
		return invalid(LocaleField, "locale must not be empty")
	}
	if expectedLocale != "" && code != expectedLocale {
		return invalid(LocaleField, "locale %q does not match expected %q", code, expectedLocale)
	}

	return valid()
}

// locate walks raw to find the first node violating the shape contract.
// It backs the schema error with a precise path.
func locate(raw map[string]any) ValidationResult {
	v, ok := raw[LocaleField]
	if !ok {
		return invalid(LocaleField, "missing locale field")
	}
	if _, ok := v.(string); !ok {
		return invalid(LocaleField, "locale must be a string, got %T", v)
	}

	for _, g := range RequiredGroups() {
		node, ok := raw[g]
		if !ok {
			return invalid(g, "missing required group %q", g)
		}
		if _, ok := asMap(node); !ok {
			return invalid(g, "group %q must be an object, got %T", g, node)
		}
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		if k != LocaleField {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		if res := checkKey("", k); !res.OK {
			return res
		}
		if res := locateNode(k, raw[k]); !res.OK {
			return res
		}
	}
	return valid()
}

func locateNode(path string, node any) ValidationResult {
	if _, ok := node.(string); ok {
		return valid()
	}
	m, ok := asMap(node)
	if !ok {
		return invalid(path, "leaf must be a string or an object, got %T", node)
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if res := checkKey(path, k); !res.OK {
			return res
		}
		if res := locateNode(path+"."+k, m[k]); !res.OK {
			return res
		}
	}
	return valid()
}

func checkKey(parent, key string) ValidationResult {
	if key != "" && !strings.Contains(key, ".") {
		return valid()
	}
	path := key
	if parent != "" {
		path = parent + "." + key
	}
	return invalid(path, "key %q must be a non-empty name without dots", key)
}
