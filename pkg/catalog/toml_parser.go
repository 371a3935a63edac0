package catalog

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// TOMLParser implements the Parser interface for TOML documents.
// Groups map onto tables and nested keys onto sub-tables or dotted keys.
type TOMLParser struct{}

// NewTOMLParser creates a new TOMLParser instance.
func NewTOMLParser() *TOMLParser {
	return &TOMLParser{}
}

// Parse parses TOML content into a raw catalog tree.
func (p *TOMLParser) Parse(ctx context.Context, content []byte) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrTOMLParsingCancelled, err)
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, ErrEmptyDocument
	}

	var data map[string]any
	if err := toml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseTOML, err)
	}
	return data, nil
}

// SupportsFileExtension checks if the parser supports the given file extension.
func (p *TOMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "toml")
}
