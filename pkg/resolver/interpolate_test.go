package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/errmsg/pkg/resolver"
)

func TestInterpolate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		params   map[string]any
		want     string
	}{
		{"no params", "Max {max} items", nil, "Max {max} items"},
		{"unmatched placeholder", "Max {max} items", map[string]any{}, "Max {max} items"},
		{"single", "Max {max} items", map[string]any{"max": 10}, "Max 10 items"},
		{"multiple", "between {min} and {max}", map[string]any{"min": 1, "max": 2.5}, "between 1 and 2.5"},
		{"repeated", "{a}-{a}", map[string]any{"a": "x"}, "x-x"},
		{"partial", "{a} {b}", map[string]any{"a": true}, "true {b}"},
		{"not an identifier", "{1x} { a }", map[string]any{"1x": "no", " a ": "no"}, "{1x} { a }"},
		{"slice value", "one of: {options}", map[string]any{"options": []string{"a", "b"}}, "one of: [a b]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, resolver.Interpolate(tt.template, tt.params))
		})
	}
}

func TestInterpolateIsIdempotent(t *testing.T) {
	t.Parallel()

	params := map[string]any{"min": 5, "max": 10}
	once := resolver.Interpolate("between {min} and {max}, not {other}", params)
	assert.Equal(t, once, resolver.Interpolate(once, params))
}

func TestPlaceholders(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"min", "max"}, resolver.Placeholders("{min} to {max}, at least {min}"))
	assert.Nil(t, resolver.Placeholders("no placeholders"))
}
