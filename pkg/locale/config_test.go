package locale_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/errmsg/pkg/locale"
)

type fakeAvailability struct {
	codes []string
}

func (f fakeAvailability) Available() []string { return f.codes }

func (f fakeAvailability) Has(code string) bool {
	for _, c := range f.codes {
		if c == code {
			return true
		}
	}
	return false
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("defaults to en", func(t *testing.T) {
		t.Parallel()
		cfg, err := locale.New([]string{"fr", "en", "es", "en"})
		require.NoError(t, err)
		assert.Equal(t, "en", cfg.Locale())
		assert.Equal(t, "en", cfg.FallbackLocale())
		assert.Equal(t, []string{"en", "es", "fr"}, cfg.Supported())
	})

	t.Run("defaults to first code without en", func(t *testing.T) {
		t.Parallel()
		cfg, err := locale.New([]string{"fr", "de"})
		require.NoError(t, err)
		assert.Equal(t, "de", cfg.Locale())
		assert.Equal(t, "de", cfg.FallbackLocale())
	})

	t.Run("options", func(t *testing.T) {
		t.Parallel()
		cfg, err := locale.New([]string{"en", "es"}, locale.WithDefault("es"), locale.WithFallback("es"))
		require.NoError(t, err)
		assert.Equal(t, "es", cfg.Locale())
		assert.Equal(t, "es", cfg.FallbackLocale())
	})

	t.Run("unsupported default", func(t *testing.T) {
		t.Parallel()
		_, err := locale.New([]string{"en"}, locale.WithDefault("fr"))
		require.ErrorIs(t, err, locale.ErrInvalidLocaleCode)
	})

	t.Run("empty set", func(t *testing.T) {
		t.Parallel()
		_, err := locale.New(nil)
		require.ErrorIs(t, err, locale.ErrNoSupportedLocales)
	})

	t.Run("malformed tag", func(t *testing.T) {
		t.Parallel()
		_, err := locale.New([]string{"en", "not a tag"})
		require.ErrorIs(t, err, locale.ErrMalformedTag)
	})
}

func TestSetLocale(t *testing.T) {
	t.Parallel()

	cfg, err := locale.New([]string{"en", "es"})
	require.NoError(t, err)

	require.NoError(t, cfg.SetLocale("es"))
	assert.Equal(t, "es", cfg.Locale())
	assert.Equal(t, "en", cfg.FallbackLocale())

	err = cfg.SetLocale("xx")
	require.Error(t, err)

	var invalid *locale.InvalidLocaleCodeError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "xx", invalid.Locale)
	assert.Equal(t, []string{"en", "es"}, invalid.Supported)
	assert.Equal(t, `invalid locale code "xx" (supported: en, es)`, err.Error())
	assert.Equal(t, "es", cfg.Locale(), "failed set must not change state")

	require.ErrorIs(t, cfg.SetFallbackLocale(""), locale.ErrInvalidLocaleCode)
	require.NoError(t, cfg.SetFallbackLocale("es"))
	assert.Equal(t, "es", cfg.FallbackLocale())
}

func TestAvailability(t *testing.T) {
	t.Parallel()

	t.Run("without source", func(t *testing.T) {
		t.Parallel()
		cfg, err := locale.New([]string{"en", "es"})
		require.NoError(t, err)
		assert.Empty(t, cfg.Available())
		assert.False(t, cfg.HasLocale("en"))
	})

	t.Run("filters to supported", func(t *testing.T) {
		t.Parallel()
		cfg, err := locale.New([]string{"en", "es"}, locale.WithAvailability(fakeAvailability{codes: []string{"en", "de"}}))
		require.NoError(t, err)
		assert.Equal(t, []string{"en"}, cfg.Available())
		assert.True(t, cfg.HasLocale("en"))
		assert.False(t, cfg.HasLocale("es"))
	})

	t.Run("set does not require loaded", func(t *testing.T) {
		t.Parallel()
		cfg, err := locale.New([]string{"en", "es"}, locale.WithAvailability(fakeAvailability{codes: []string{"en"}}))
		require.NoError(t, err)
		require.NoError(t, cfg.SetLocale("es"))
		assert.False(t, cfg.HasLocale("es"))
	})
}

func TestConcurrentSetLocale(t *testing.T) {
	t.Parallel()

	cfg, err := locale.New([]string{"en", "es", "fr"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for _, code := range []string{"en", "es", "fr", "es", "fr", "en"} {
		wg.Add(1)
		go func(code string) {
			defer wg.Done()
			_ = cfg.SetLocale(code)
			_ = cfg.Locale()
		}(code)
	}
	wg.Wait()

	assert.Contains(t, []string{"en", "es", "fr"}, cfg.Locale())
}
