package catalog_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/errmsg/pkg/catalog"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("valid catalog", func(t *testing.T) {
		t.Parallel()
		c, err := catalog.New(rawCatalog("en", map[string]any{
			"string": map[string]any{"required": "is required"},
		}))
		require.NoError(t, err)
		assert.Equal(t, "en", c.Locale())
	})

	t.Run("locale mismatch", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.NewForLocale(rawCatalog("en", nil), "es")
		require.Error(t, err)

		var invalid *catalog.InvalidCatalogError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "es", invalid.Locale)
		assert.Equal(t, catalog.LocaleField, invalid.Result.Path)
		assert.ErrorIs(t, err, catalog.ErrInvalidCatalog)
	})

	t.Run("copies input", func(t *testing.T) {
		t.Parallel()
		group := map[string]any{"required": "is required"}
		c, err := catalog.New(rawCatalog("en", map[string]any{"string": group}))
		require.NoError(t, err)

		group["required"] = "mutated"
		msg, ok := c.Lookup("string.required")
		require.True(t, ok)
		assert.Equal(t, "is required", msg)
	})

	t.Run("accepts map[any]any nodes", func(t *testing.T) {
		t.Parallel()
		c, err := catalog.New(rawCatalog("en", map[string]any{
			"network": map[any]any{"examples": map[any]any{"ipv4": "(e.g. 1.2.3.4)"}},
		}))
		require.NoError(t, err)
		msg, ok := c.Lookup("network.examples.ipv4")
		require.True(t, ok)
		assert.Equal(t, "(e.g. 1.2.3.4)", msg)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	withoutGroup := rawCatalog("en", nil)
	delete(withoutGroup, "email")

	withoutLocale := rawCatalog("en", nil)
	delete(withoutLocale, catalog.LocaleField)

	tests := []struct {
		name     string
		raw      map[string]any
		expected string
		ok       bool
		path     string
	}{
		{name: "valid", raw: rawCatalog("en", nil), expected: "en", ok: true},
		{name: "valid without expectation", raw: rawCatalog("fr", nil), ok: true},
		{name: "nil", raw: nil},
		{name: "missing group", raw: withoutGroup, path: "email"},
		{name: "missing locale", raw: withoutLocale, path: catalog.LocaleField},
		{name: "non-string locale", raw: rawCatalog("en", map[string]any{catalog.LocaleField: 42}), path: catalog.LocaleField},
		{name: "empty locale", raw: rawCatalog("", nil), path: catalog.LocaleField},
		{name: "group not an object", raw: rawCatalog("en", map[string]any{"string": "oops"}), path: "string"},
		{name: "numeric leaf", raw: rawCatalog("en", map[string]any{"number": map[string]any{"tooSmall": 5}}), path: "number.tooSmall"},
		{name: "list leaf", raw: rawCatalog("en", map[string]any{"enum": map[string]any{"invalid": []any{"a"}}}), path: "enum.invalid"},
		{name: "bad leaf in extra group", raw: rawCatalog("en", map[string]any{"custom": map[string]any{"a": map[string]any{"b": true}}}), path: "custom.a.b"},
		{name: "mismatched locale", raw: rawCatalog("en", nil), expected: "es", path: catalog.LocaleField},
		{name: "dotted key", raw: rawCatalog("en", map[string]any{"network": map[string]any{"examples.ipv4": "192.168.0.1"}}), path: "network.examples.ipv4"},
		{name: "nested dotted key", raw: rawCatalog("en", map[string]any{"network": map[string]any{"examples": map[string]any{"v4.short": "x"}}}), path: "network.examples.v4.short"},
		{name: "dotted group", raw: rawCatalog("en", map[string]any{"custom.group": map[string]any{"a": "b"}}), path: "custom.group"},
		{name: "empty key", raw: rawCatalog("en", map[string]any{"string": map[string]any{"": "blank"}}), path: "string."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := catalog.Validate(tt.raw, tt.expected)
			assert.Equal(t, tt.ok, res.OK)
			if !tt.ok {
				assert.NotEmpty(t, res.Reason)
				assert.Equal(t, tt.path, res.Path)
			}
		})
	}
}

func TestEveryKeyResolves(t *testing.T) {
	t.Parallel()

	_, err := catalog.New(rawCatalog("en", map[string]any{
		"network": map[string]any{"examples.ipv4": "192.168.0.1"},
	}))
	var invalid *catalog.InvalidCatalogError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "network.examples.ipv4", invalid.Result.Path)

	c, err := catalog.New(rawCatalog("en", map[string]any{
		"network": map[string]any{"examples": map[string]any{"ipv4": "192.168.0.1"}},
		"custom":  map[string]any{"a": map[string]any{"b": "c"}},
	}))
	require.NoError(t, err)
	for _, key := range c.Keys() {
		assert.True(t, c.Has(key), key)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	c, err := catalog.New(rawCatalog("en", map[string]any{
		"string": map[string]any{
			"required": "is required",
			"blank":    "",
		},
		"network": map[string]any{
			"examples": map[string]any{"ipv4": "(e.g. 192.168.0.1)"},
		},
	}))
	require.NoError(t, err)

	tests := []struct {
		path  string
		want  string
		found bool
	}{
		{"string.required", "is required", true},
		{"string.blank", "", true},
		{"network.examples.ipv4", "(e.g. 192.168.0.1)", true},
		{"network.examples", "", false},
		{"network.examples.ipv4.deeper", "", false},
		{"string.missing", "", false},
		{"missing.key", "", false},
		{"string", "", false},
		{"locale", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			got, ok := c.Lookup(tt.path)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.found, c.Has(tt.path))
		})
	}

	var nilCatalog *catalog.Catalog
	_, ok := nilCatalog.Lookup("string.required")
	assert.False(t, ok)
}

func TestKeys(t *testing.T) {
	t.Parallel()

	c, err := catalog.New(rawCatalog("en", map[string]any{
		"string":  map[string]any{"required": "is required", "tooShort": "short"},
		"network": map[string]any{"examples": map[string]any{"ipv4": "x", "ipv6": "y"}},
	}))
	require.NoError(t, err)

	keys := c.Keys()
	assert.Equal(t, []string{
		"network.examples.ipv4",
		"network.examples.ipv6",
		"string.required",
		"string.tooShort",
	}, keys)

	for _, k := range keys {
		assert.True(t, c.Has(k), k)
	}
}

func TestMap(t *testing.T) {
	t.Parallel()

	raw := rawCatalog("en", map[string]any{"string": map[string]any{"required": "is required"}})
	c, err := catalog.New(raw)
	require.NoError(t, err)

	m := c.Map()
	assert.Equal(t, "en", m[catalog.LocaleField])
	assert.ElementsMatch(t, append(catalog.RequiredGroups(), catalog.LocaleField), keysOf(m))

	again, err := catalog.New(m)
	require.NoError(t, err)
	assert.Equal(t, c.Keys(), again.Keys())
}

func TestInvalidCatalogErrorMessage(t *testing.T) {
	t.Parallel()

	err := &catalog.InvalidCatalogError{
		Locale: "en",
		Result: catalog.ValidationResult{Reason: "missing required group \"email\"", Path: "email"},
	}
	assert.Contains(t, err.Error(), `"en"`)
	assert.Contains(t, err.Error(), "email")
	assert.True(t, errors.Is(err, catalog.ErrInvalidCatalog))
}

func keysOf(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
