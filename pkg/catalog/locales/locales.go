// Package locales embeds the default message catalogs shipped with the module.
package locales

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/dmitrymomot/errmsg/pkg/catalog"
)

//go:embed *.yaml
var files embed.FS

// Pattern is the file name pattern of each embedded catalog.
const Pattern = "%s.yaml"

// FS exposes the embedded catalog documents, one "<locale>.yaml" per locale.
func FS() fs.FS {
	return files
}

// Supported returns the codes of every embedded catalog, sorted.
func Supported() []string {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil
	}
	codes := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		codes = append(codes, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(codes)
	return codes
}

// Load decodes and validates the embedded catalog for code.
func Load(ctx context.Context, code string) (*catalog.Catalog, error) {
	data, err := files.ReadFile(fmt.Sprintf(Pattern, code))
	if err != nil {
		return nil, fmt.Errorf("embedded catalog %q: %w", code, err)
	}
	raw, err := catalog.NewYAMLParser().Parse(ctx, data)
	if err != nil {
		return nil, err
	}
	return catalog.NewForLocale(raw, code)
}
