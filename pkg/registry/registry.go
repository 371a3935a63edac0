package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/errmsg/pkg/catalog"
	"github.com/dmitrymomot/errmsg/pkg/logger"
)

// Registry owns every loaded catalog, keyed by locale. Catalogs are cached for
// the registry's lifetime; re-registration replaces an entry wholesale.
// It is safe for concurrent use.
type Registry struct {
	mu          sync.RWMutex
	catalogs    map[string]*catalog.Catalog
	loaders     map[string]Loader
	inflight    map[string]*loadCall
	logger      *slog.Logger
	metrics     *Metrics
	concurrency int
}

type loadCall struct {
	done chan struct{}
	err  error
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		catalogs: make(map[string]*catalog.Catalog),
		loaders:  make(map[string]Loader),
		inflight: make(map[string]*loadCall),
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterLoader adds or replaces the loader for code.
func (r *Registry) RegisterLoader(code string, l Loader) error {
	if code == "" {
		return ErrEmptyLocale
	}
	if l == nil {
		return ErrNilLoader
	}
	r.mu.Lock()
	r.loaders[code] = l
	r.mu.Unlock()
	return nil
}

// LoadLocale fetches, validates and registers the catalog for code.
// It returns immediately when code is already registered. Concurrent calls for
// the same code share a single fetch; a caller whose shared fetch was
// cancelled by another caller's context retries with its own.
func (r *Registry) LoadLocale(ctx context.Context, code string) error {
	for {
		r.mu.Lock()
		if _, ok := r.catalogs[code]; ok {
			r.mu.Unlock()
			return nil
		}
		loader, ok := r.loaders[code]
		if !ok {
			supported := r.supported()
			r.mu.Unlock()
			return &UnsupportedLocaleError{Locale: code, Supported: supported}
		}
		if call, ok := r.inflight[code]; ok {
			r.mu.Unlock()
			select {
			case <-call.done:
				if isContextError(call.err) && ctx.Err() == nil {
					continue
				}
				return call.err
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		call := &loadCall{done: make(chan struct{})}
		r.inflight[code] = call
		r.mu.Unlock()

		return r.own(ctx, code, loader, call)
	}
}

func (r *Registry) own(ctx context.Context, code string, loader Loader, call *loadCall) error {
	defer func() {
		r.mu.Lock()
		delete(r.inflight, code)
		r.mu.Unlock()
		close(call.done)
	}()

	call.err = r.load(ctx, code, loader)
	return call.err
}

func (r *Registry) load(ctx context.Context, code string, loader Loader) error {
	start := time.Now()

	raw, err := fetch(ctx, code, loader)
	if err != nil {
		var invalid *catalog.InvalidCatalogError
		if !errors.As(err, &invalid) {
			err = &LoadError{Locale: code, Err: err}
		}
		r.fail(ctx, code, "error", start, err)
		return err
	}

	c, err := catalog.NewForLocale(raw, code)
	if err != nil {
		r.fail(ctx, code, "invalid", start, err)
		return err
	}

	r.mu.Lock()
	r.catalogs[c.Locale()] = c
	r.mu.Unlock()

	r.metrics.observe(code, "ok", time.Since(start))
	r.logger.DebugContext(ctx, "catalog loaded",
		logger.Locale(code),
		slog.Int("keys", len(c.Keys())),
		logger.Duration(time.Since(start)),
	)
	return nil
}

// fetch calls the loader, turning a panic into ErrLoaderPanic.
func fetch(ctx context.Context, code string, loader Loader) (raw map[string]any, err error) {
	defer func() {
		if p := recover(); p != nil {
			raw, err = nil, fmt.Errorf("%w: %v", ErrLoaderPanic, p)
		}
	}()
	return loader.Load(ctx, code)
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func (r *Registry) fail(ctx context.Context, code, result string, start time.Time, err error) {
	r.metrics.observe(code, result, time.Since(start))
	r.logger.WarnContext(ctx, "catalog load failed",
		logger.Locale(code),
		logger.Error(err),
	)
}

// LoadLocales loads every code concurrently and waits for all of them.
// Failures are joined into the returned error; catalogs that loaded
// successfully stay registered.
func (r *Registry) LoadLocales(ctx context.Context, codes ...string) error {
	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs []error
	)
	if r.concurrency > 0 {
		g.SetLimit(r.concurrency)
	}

	for _, code := range codes {
		g.Go(func() error {
			if err := r.LoadLocale(ctx, code); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
				return err
			}
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}

// EnsureLocaleLoaded loads code unless it is already available.
func (r *Registry) EnsureLocaleLoaded(ctx context.Context, code string) error {
	if r.Has(code) {
		return nil
	}
	return r.LoadLocale(ctx, code)
}

// RegisterMessages registers c under its own locale, replacing any previous entry.
func (r *Registry) RegisterMessages(c *catalog.Catalog) error {
	if c == nil {
		return ErrNilCatalog
	}
	r.mu.Lock()
	r.catalogs[c.Locale()] = c
	r.mu.Unlock()
	return nil
}

// Catalog returns the registered catalog for code.
func (r *Registry) Catalog(code string) (*catalog.Catalog, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.catalogs[code]
	return c, ok
}

// Has reports whether a catalog is registered for code.
func (r *Registry) Has(code string) bool {
	_, ok := r.Catalog(code)
	return ok
}

// Available returns the codes of every registered catalog, sorted.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	codes := make([]string, 0, len(r.catalogs))
	for code := range r.catalogs {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Supported returns the codes with a registered loader, sorted.
func (r *Registry) Supported() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.supported()
}

func (r *Registry) supported() []string {
	codes := make([]string, 0, len(r.loaders))
	for code := range r.loaders {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Reset drops every registered catalog while keeping loaders.
// Intended for test harnesses only.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.catalogs = make(map[string]*catalog.Catalog)
	r.mu.Unlock()
}
