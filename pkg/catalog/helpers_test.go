package catalog_test

import (
	"github.com/dmitrymomot/errmsg/pkg/catalog"
)

// rawCatalog returns a minimal valid document for code with the given groups
// merged over empty required groups.
func rawCatalog(code string, groups map[string]any) map[string]any {
	raw := map[string]any{catalog.LocaleField: code}
	for _, g := range catalog.RequiredGroups() {
		raw[g] = map[string]any{}
	}
	for k, v := range groups {
		raw[k] = v
	}
	return raw
}
