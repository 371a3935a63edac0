package registry_test

import (
	"context"
	"errors"
	"io/fs"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/errmsg/pkg/catalog"
	"github.com/dmitrymomot/errmsg/pkg/registry"
)

func TestLoadLocale(t *testing.T) {
	t.Parallel()

	t.Run("loads and caches", func(t *testing.T) {
		t.Parallel()
		l := &countingLoader{}
		reg := registry.New(registry.WithLoader("en", l))

		require.NoError(t, reg.LoadLocale(context.Background(), "en"))
		require.NoError(t, reg.LoadLocale(context.Background(), "en"))

		assert.Equal(t, int32(1), l.calls.Load())
		assert.True(t, reg.Has("en"))

		c, ok := reg.Catalog("en")
		require.True(t, ok)
		msg, _ := c.Lookup("string.required")
		assert.Equal(t, "is required (en)", msg)
	})

	t.Run("unsupported locale", func(t *testing.T) {
		t.Parallel()
		reg := registry.New(
			registry.WithLoader("en", &countingLoader{}),
			registry.WithLoader("es", &countingLoader{}),
		)

		err := reg.LoadLocale(context.Background(), "xx")
		require.Error(t, err)

		var unsupported *registry.UnsupportedLocaleError
		require.ErrorAs(t, err, &unsupported)
		assert.Equal(t, "xx", unsupported.Locale)
		assert.Equal(t, []string{"en", "es"}, unsupported.Supported)
		assert.ErrorIs(t, err, registry.ErrUnsupportedLocale)
		assert.Contains(t, err.Error(), "en, es")
	})

	t.Run("invalid catalog", func(t *testing.T) {
		t.Parallel()
		reg := registry.New(registry.WithLoader("en", registry.LoaderFunc(
			func(context.Context, string) (map[string]any, error) {
				return map[string]any{"locale": "en"}, nil
			},
		)))

		err := reg.LoadLocale(context.Background(), "en")
		var invalid *catalog.InvalidCatalogError
		require.ErrorAs(t, err, &invalid)
		assert.False(t, reg.Has("en"))
	})

	t.Run("locale field mismatch is rejected", func(t *testing.T) {
		t.Parallel()
		reg := registry.New(registry.WithLoader("es", registry.LoaderFunc(
			func(context.Context, string) (map[string]any, error) {
				return rawCatalog("en", nil), nil
			},
		)))

		err := reg.LoadLocale(context.Background(), "es")
		assert.ErrorIs(t, err, catalog.ErrInvalidCatalog)
		assert.Empty(t, reg.Available())
	})

	t.Run("fetch failure is wrapped", func(t *testing.T) {
		t.Parallel()
		reg := registry.New(registry.WithLoader("en", &registry.MapLoader{}))

		err := reg.LoadLocale(context.Background(), "en")
		var loadErr *registry.LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Equal(t, "en", loadErr.Locale)
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.ErrorIs(t, err, registry.ErrLoadFailed)
		assert.Contains(t, err.Error(), `"en"`)
	})

	t.Run("concurrent calls share one fetch", func(t *testing.T) {
		t.Parallel()
		l := &countingLoader{block: make(chan struct{})}
		reg := registry.New(registry.WithLoader("en", l))

		var wg sync.WaitGroup
		errs := make([]error, 8)
		for i := range errs {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs[i] = reg.LoadLocale(context.Background(), "en")
			}()
		}

		require.Eventually(t, func() bool { return l.calls.Load() == 1 }, time.Second, time.Millisecond)
		close(l.block)
		wg.Wait()

		for _, err := range errs {
			assert.NoError(t, err)
		}
		assert.Equal(t, int32(1), l.calls.Load())
	})
}

func TestLoadLocales(t *testing.T) {
	t.Parallel()

	t.Run("all succeed", func(t *testing.T) {
		t.Parallel()
		l := &countingLoader{}
		reg := registry.New(
			registry.WithLoaders(registry.Same(l, "en", "es", "fr")),
			registry.WithConcurrency(2),
		)

		require.NoError(t, reg.LoadLocales(context.Background(), "en", "es", "fr"))
		assert.Equal(t, []string{"en", "es", "fr"}, reg.Available())
	})

	t.Run("partial failure keeps successes", func(t *testing.T) {
		t.Parallel()
		reg := registry.New(
			registry.WithLoader("en", &countingLoader{}),
			registry.WithLoader("es", &registry.MapLoader{}),
		)

		err := reg.LoadLocales(context.Background(), "en", "es", "xx")
		require.Error(t, err)
		assert.ErrorIs(t, err, registry.ErrLoadFailed)
		assert.ErrorIs(t, err, registry.ErrUnsupportedLocale)

		assert.True(t, reg.Has("en"))
		assert.False(t, reg.Has("es"))
	})

	t.Run("no codes", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, registry.New().LoadLocales(context.Background()))
	})

	t.Run("loads run concurrently", func(t *testing.T) {
		t.Parallel()
		codes := []string{"en", "es", "fr", "de"}
		l := &gaugeLoader{release: make(chan struct{})}
		reg := registry.New(registry.WithLoaders(registry.Same(l, codes...)))

		done := make(chan error, 1)
		go func() { done <- reg.LoadLocales(context.Background(), codes...) }()

		require.Eventually(t, func() bool { return l.inflight.Load() == int32(len(codes)) },
			time.Second, time.Millisecond, "every load should be in flight at once")
		close(l.release)

		require.NoError(t, <-done)
		assert.Equal(t, []string{"de", "en", "es", "fr"}, reg.Available())
	})

	t.Run("concurrency limit is honoured", func(t *testing.T) {
		t.Parallel()
		codes := []string{"en", "es", "fr", "de", "it"}
		l := &gaugeLoader{release: make(chan struct{})}
		reg := registry.New(
			registry.WithLoaders(registry.Same(l, codes...)),
			registry.WithConcurrency(2),
		)

		done := make(chan error, 1)
		go func() { done <- reg.LoadLocales(context.Background(), codes...) }()

		require.Eventually(t, func() bool { return l.inflight.Load() == 2 }, time.Second, time.Millisecond)
		assert.Never(t, func() bool { return l.inflight.Load() > 2 }, 50*time.Millisecond, time.Millisecond)
		close(l.release)

		require.NoError(t, <-done)
		assert.Equal(t, int32(2), l.peak.Load())
		assert.Len(t, reg.Available(), len(codes))
	})
}

func TestLoadLocaleLoaderPanic(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})
	reg := registry.New(registry.WithLoader("en", registry.LoaderFunc(
		func(context.Context, string) (map[string]any, error) {
			<-block
			panic("corrupt source")
		},
	)))

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = reg.LoadLocale(context.Background(), "en")
		}()
	}
	close(block)
	wg.Wait()

	for _, err := range errs {
		assert.ErrorIs(t, err, registry.ErrLoaderPanic)
		assert.ErrorIs(t, err, registry.ErrLoadFailed)
	}
	assert.False(t, reg.Has("en"))
}

func TestLoadLocaleOwnerCancelled(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	started := make(chan struct{})
	reg := registry.New(registry.WithLoader("en", registry.LoaderFunc(
		func(ctx context.Context, code string) (map[string]any, error) {
			if calls.Add(1) == 1 {
				close(started)
				<-ctx.Done()
				return nil, ctx.Err()
			}
			return rawCatalog(code, nil), nil
		},
	)))

	ownerCtx, cancel := context.WithCancel(context.Background())
	ownerErr := make(chan error, 1)
	go func() { ownerErr <- reg.LoadLocale(ownerCtx, "en") }()
	<-started

	joinerErr := make(chan error, 1)
	go func() { joinerErr <- reg.LoadLocale(context.Background(), "en") }()
	time.Sleep(20 * time.Millisecond)
	cancel()

	assert.ErrorIs(t, <-ownerErr, context.Canceled)
	require.NoError(t, <-joinerErr)
	assert.True(t, reg.Has("en"))
	assert.Equal(t, int32(2), calls.Load())
}

func TestEnsureLocaleLoaded(t *testing.T) {
	t.Parallel()

	l := &countingLoader{}
	reg := registry.New(registry.WithLoader("en", l))

	c, err := catalog.New(rawCatalog("en", nil))
	require.NoError(t, err)
	require.NoError(t, reg.RegisterMessages(c))

	require.NoError(t, reg.EnsureLocaleLoaded(context.Background(), "en"))
	assert.Equal(t, int32(0), l.calls.Load())
}

func TestRegisterMessages(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	assert.ErrorIs(t, reg.RegisterMessages(nil), registry.ErrNilCatalog)

	first, err := catalog.New(rawCatalog("de", map[string]any{"string": map[string]any{"required": "v1"}}))
	require.NoError(t, err)
	second, err := catalog.New(rawCatalog("de", map[string]any{"string": map[string]any{"required": "v2"}}))
	require.NoError(t, err)

	require.NoError(t, reg.RegisterMessages(first))
	require.NoError(t, reg.RegisterMessages(second))

	c, ok := reg.Catalog("de")
	require.True(t, ok)
	msg, _ := c.Lookup("string.required")
	assert.Equal(t, "v2", msg)

	// A registered catalog without a loader is available but not supported.
	assert.Equal(t, []string{"de"}, reg.Available())
	assert.Empty(t, reg.Supported())
}

func TestRegisterLoader(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	assert.ErrorIs(t, reg.RegisterLoader("", &countingLoader{}), registry.ErrEmptyLocale)
	assert.ErrorIs(t, reg.RegisterLoader("en", nil), registry.ErrNilLoader)

	require.NoError(t, reg.RegisterLoader("en", &countingLoader{}))
	assert.Equal(t, []string{"en"}, reg.Supported())
	require.NoError(t, reg.LoadLocale(context.Background(), "en"))
}

func TestReset(t *testing.T) {
	t.Parallel()

	l := &countingLoader{}
	reg := registry.New(registry.WithLoader("en", l))
	require.NoError(t, reg.LoadLocale(context.Background(), "en"))

	reg.Reset()
	assert.False(t, reg.Has("en"))
	assert.Equal(t, []string{"en"}, reg.Supported())

	require.NoError(t, reg.LoadLocale(context.Background(), "en"))
	assert.Equal(t, int32(2), l.calls.Load())
}

func TestMetrics(t *testing.T) {
	t.Parallel()

	promReg := prometheus.NewRegistry()
	m, err := registry.NewMetrics(promReg, "test")
	require.NoError(t, err)

	reg := registry.New(
		registry.WithMetrics(m),
		registry.WithLoader("en", &countingLoader{}),
		registry.WithLoader("es", registry.LoaderFunc(func(context.Context, string) (map[string]any, error) {
			return nil, errors.New("boom")
		})),
	)

	require.NoError(t, reg.LoadLocale(context.Background(), "en"))
	require.Error(t, reg.LoadLocale(context.Background(), "es"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Loads().WithLabelValues("en", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Loads().WithLabelValues("es", "error")))

	_, err = registry.NewMetrics(promReg, "test")
	assert.Error(t, err, "duplicate registration must fail")

	_, err = registry.NewMetrics(nil, "test")
	assert.NoError(t, err)
}
