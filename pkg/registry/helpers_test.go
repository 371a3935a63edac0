package registry_test

import (
	"context"
	"sync/atomic"

	"github.com/dmitrymomot/errmsg/pkg/catalog"
)

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

// countingLoader serves rawCatalog documents and counts fetches.
type countingLoader struct {
	calls atomic.Int32
	block chan struct{}
}

func (l *countingLoader) Load(ctx context.Context, code string) (map[string]any, error) {
	l.calls.Add(1)
	if l.block != nil {
		select {
		case <-l.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return rawCatalog(code, map[string]any{
		"string": map[string]any{"required": "is required (" + code + ")"},
	}), nil
}

// gaugeLoader blocks every fetch until release is closed and records how
// many fetches were in flight at once.
type gaugeLoader struct {
	release  chan struct{}
	inflight atomic.Int32
	peak     atomic.Int32
}

func (l *gaugeLoader) Load(ctx context.Context, code string) (map[string]any, error) {
	n := l.inflight.Add(1)
	defer l.inflight.Add(-1)
	for {
		p := l.peak.Load()
		if n <= p || l.peak.CompareAndSwap(p, n) {
			break
		}
	}

	select {
	case <-l.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return rawCatalog(code, nil), nil
}
