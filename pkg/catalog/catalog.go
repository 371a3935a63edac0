package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Catalog is an immutable per-locale tree of message groups.
// Every reachable leaf is a message template string.
type Catalog struct {
	locale string
	root   map[string]any
	keys   []string
}

// New validates raw and builds a catalog from a deep copy of it.
// It returns *InvalidCatalogError when the payload breaks the shape contract.
func New(raw map[string]any) (*Catalog, error) {
	return newCatalog(raw, "")
}

// NewForLocale is New with the additional requirement that the document's
// locale field equals code.
func NewForLocale(raw map[string]any, code string) (*Catalog, error) {
	return newCatalog(raw, code)
}

func newCatalog(raw map[string]any, expected string) (*Catalog, error) {
	res := Validate(raw, expected)
	if !res.OK {
		code := expected
		if code == "" {
			code, _ = raw[LocaleField].(string)
		}
		return nil, &InvalidCatalogError{Locale: code, Result: res}
	}

	root := normalize(raw)
	code := root[LocaleField].(string)
	delete(root, LocaleField)

	c := &Catalog{locale: code, root: root}
	c.keys = flatten(root, "", nil)
	sort.Strings(c.keys)
	return c, nil
}

// Locale returns the code the catalog declares for itself.
func (c *Catalog) Locale() string {
	return c.locale
}

// Lookup resolves a dot-path to its template. The boolean is false when an
// intermediate segment is missing or not an object, or the leaf is not a string.
func (c *Catalog) Lookup(path string) (string, bool) {
	if c == nil || path == "" {
		return "", false
	}

	current := c.root
	for {
		segment, rest, more := strings.Cut(path, ".")
		node, ok := current[segment]
		if !ok {
			return "", false
		}
		if !more {
			s, ok := node.(string)
			return s, ok
		}
		next, ok := node.(map[string]any)
		if !ok {
			return "", false
		}
		current = next
		path = rest
	}
}

// Has reports whether path resolves to a string leaf.
func (c *Catalog) Has(path string) bool {
	_, ok := c.Lookup(path)
	return ok
}

// Keys returns every dot-path with a string leaf, sorted.
func (c *Catalog) Keys() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Groups returns the catalog's top-level group names, sorted.
func (c *Catalog) Groups() []string {
	if c == nil {
		return nil
	}
	groups := make([]string, 0, len(c.root))
	for g := range c.root {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}

// Map returns a deep copy of the catalog document, locale field included.
func (c *Catalog) Map() map[string]any {
	if c == nil {
		return nil
	}
	out := normalize(c.root)
	out[LocaleField] = c.locale
	return out
}

func flatten(m map[string]any, prefix string, acc []string) []string {
	for k, v := range m {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		switch node := v.(type) {
		case string:
			acc = append(acc, path)
		case map[string]any:
			acc = flatten(node, path, acc)
		}
	}
	return acc
}

// asMap accepts both map[string]any and the map[any]any shape some decoders produce.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

// normalize deep copies m converting nested maps to map[string]any.
func normalize(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if nested, ok := asMap(v); ok {
			out[k] = normalize(nested)
			continue
		}
		out[k] = v
	}
	return out
}
