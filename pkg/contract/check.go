package contract

import (
	"fmt"
	"sort"
	"strings"
)

// Result describes the outcome of a parameter-shape check.
type Result struct {
	OK      bool
	Reason  string
	Missing []string
	Extra   []string
}

// Check validates that params satisfy the contract for group/key.
// Groups outside the contract are not governed and always pass.
// Unexpected params only fail the check when strict is true.
func Check(group, key string, params map[string]any, strict bool) Result {
	entries, ok := table[group]
	if !ok {
		return Result{OK: true}
	}

	required, ok := entries[key]
	if !ok {
		return Result{Reason: fmt.Sprintf("key %q is not defined for group %q", key, group)}
	}

	var missing []string
	for _, name := range required {
		if _, ok := params[name]; !ok {
			missing = append(missing, name)
		}
	}

	var extra []string
	if strict {
		for name := range params {
			if !contains(required, name) {
				extra = append(extra, name)
			}
		}
		sort.Strings(extra)
	}

	if len(missing) == 0 && len(extra) == 0 {
		return Result{OK: true}
	}

	var reasons []string
	if len(missing) > 0 {
		reasons = append(reasons, "missing params: "+strings.Join(missing, ", "))
	}
	if len(extra) > 0 {
		reasons = append(reasons, "unexpected params: "+strings.Join(extra, ", "))
	}

	return Result{
		Reason:  fmt.Sprintf("%s.%s: %s", group, key, strings.Join(reasons, "; ")),
		Missing: missing,
		Extra:   extra,
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
