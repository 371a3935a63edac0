package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache stores parsed configurations keyed by type and prefix.
type cache struct {
	mu     sync.Mutex
	values map[string]any
}

var (
	global = &cache{values: make(map[string]any)}

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v based on its `env` struct tags.
// The default .env file is read once, if present. Each config type is parsed
// only once; later calls return the cached value.
//
// Example:
//
//	type Config struct {
//		Source  string   `env:"SOURCE" envDefault:"embedded"`
//		Locales []string `env:"LOCALES" envSeparator:","`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	return LoadPrefixed(v, "")
}

// LoadPrefixed is Load with every variable name prefixed, so several
// instances of the same config type can be read from one environment.
func LoadPrefixed[T any](v *T, prefix string) error {
	defaultEnvLoaded.Do(func() {
		// The default .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	id := cacheKey[T](prefix)

	global.mu.Lock()
	defer global.mu.Unlock()

	if cached, ok := global.values[id]; ok {
		*v = cached.(T)
		return nil
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	global.values[id] = *v
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv reads the given .env files into the process environment, later
// files overriding earlier ones. Without arguments it reads ".env".
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Reset drops every cached configuration. Intended for tests.
func Reset() {
	global.mu.Lock()
	global.values = make(map[string]any)
	global.mu.Unlock()
}

func cacheKey[T any](prefix string) string {
	return reflect.TypeFor[T]().String() + "|" + prefix
}
