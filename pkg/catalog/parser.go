package catalog

import (
	"context"
	"path/filepath"
	"strings"
)

// Parser decodes one catalog document in a specific file format.
type Parser interface {
	// Parse decodes content into a raw catalog tree. The result is not validated.
	Parse(ctx context.Context, content []byte) (map[string]any, error)

	// SupportsFileExtension reports whether the parser handles ext.
	// The extension may or may not include a leading dot.
	SupportsFileExtension(ext string) bool
}

// ParserForFile returns a parser chosen by filename extension, or nil.
func ParserForFile(filename string) Parser {
	return ParserForExtension(filepath.Ext(filename))
}

// ParserForExtension returns a parser for ext ("yaml", ".json", ...), or nil.
func ParserForExtension(ext string) Parser {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	case "toml":
		return NewTOMLParser()
	default:
		return nil
	}
}

// Decode parses content with p and builds a validated catalog from it.
func Decode(ctx context.Context, p Parser, content []byte) (*Catalog, error) {
	if p == nil {
		return nil, ErrUnsupportedFormat
	}
	raw, err := p.Parse(ctx, content)
	if err != nil {
		return nil, err
	}
	return New(raw)
}
