package resolver

import (
	"fmt"
	"regexp"
)

// placeholderRegex matches named placeholders in the form {name}.
var placeholderRegex = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Interpolate substitutes {name} placeholders with the matching entry of params
// in a single pass. Values are stringified with fmt.Sprint. Placeholders with no
// matching param are kept verbatim.
func Interpolate(template string, params map[string]any) string {
	if len(params) == 0 {
		return template
	}
	return placeholderRegex.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]
		if val, ok := params[name]; ok {
			return fmt.Sprint(val)
		}
		return match
	})
}

// Placeholders returns the distinct placeholder names of template in order of
// first appearance.
func Placeholders(template string) []string {
	matches := placeholderRegex.FindAllStringSubmatch(template, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		names = append(names, m[1])
	}
	return names
}
