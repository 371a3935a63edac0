package registry

import (
	"context"
	"fmt"
	"io/fs"
	"maps"
)

// Loader fetches the raw catalog document for a locale.
// The registry validates the payload; loaders only acquire and decode it.
type Loader interface {
	Load(ctx context.Context, code string) (map[string]any, error)
}

// LoaderFunc adapts a plain function to the Loader interface.
type LoaderFunc func(ctx context.Context, code string) (map[string]any, error)

// Load implements Loader.
func (f LoaderFunc) Load(ctx context.Context, code string) (map[string]any, error) {
	return f(ctx, code)
}

// MapLoader serves documents held in memory, keyed by locale.
type MapLoader struct {
	Data map[string]map[string]any
}

// Load implements Loader.
func (l *MapLoader) Load(_ context.Context, code string) (map[string]any, error) {
	raw, ok := l.Data[code]
	if !ok {
		return nil, fmt.Errorf("map loader: %w", fs.ErrNotExist)
	}
	return maps.Clone(raw), nil
}

// Codes returns the locales the map holds a document for.
func (l *MapLoader) Codes() []string {
	codes := make([]string, 0, len(l.Data))
	for code := range l.Data {
		codes = append(codes, code)
	}
	return codes
}

// Same returns a loader map registering l for every code.
func Same(l Loader, codes ...string) map[string]Loader {
	out := make(map[string]Loader, len(codes))
	for _, code := range codes {
		out[code] = l
	}
	return out
}
