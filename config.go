package errmsg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/errmsg/pkg/catalog/locales"
	"github.com/dmitrymomot/errmsg/pkg/config"
	"github.com/dmitrymomot/errmsg/pkg/formatter"
	"github.com/dmitrymomot/errmsg/pkg/logger"
	"github.com/dmitrymomot/errmsg/pkg/registry"
)

// EnvPrefix prefixes every variable read by LoadConfig.
const EnvPrefix = "MESSAGES_"

// Catalog sources accepted by Config.Source.
const (
	SourceEmbedded = "embedded"
	SourceDir      = "dir"
	SourceS3       = "s3"
	SourceRedis    = "redis"
)

// Config describes a Manager built from the environment. Locales is
// required for the s3 and redis sources; the embedded and dir sources
// discover locales when it is empty.
type Config struct {
	Source         string   `env:"SOURCE" envDefault:"embedded"`
	Locales        []string `env:"LOCALES" envSeparator:","`
	DefaultLocale  string   `env:"DEFAULT_LOCALE"`
	FallbackLocale string   `env:"FALLBACK_LOCALE"`
	Preload        bool     `env:"PRELOAD" envDefault:"true"`
	Concurrency    int      `env:"CONCURRENCY" envDefault:"4"`

	DefaultKey   string `env:"DEFAULT_KEY" envDefault:"string.invalid"`
	ErrorFormat  string `env:"ERROR_FORMAT"`
	StrictParams bool   `env:"STRICT_PARAMS"`
	LogMissing   bool   `env:"LOG_MISSING"`

	// LogLevel enables a stderr logger when set and no WithLogger option is given.
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	Dir     string `env:"DIR" envDefault:"./locales"`
	Pattern string `env:"PATTERN" envDefault:"%s.yaml"`

	S3    registry.S3Config `envPrefix:"S3_"`
	Redis RedisSource       `envPrefix:"REDIS_"`
}

// RedisSource configures catalogs stored in redis.
type RedisSource struct {
	registry.RedisConfig
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"errmsg:catalog:"`
	Format    string `env:"FORMAT" envDefault:"json"`
}

// LoadConfig reads Config from MESSAGES_* environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.LoadPrefixed(&cfg, EnvPrefix); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig builds a Manager whose loaders come from cfg.Source and,
// when cfg.Preload is set, loads every configured locale before returning.
// opts are applied after the values derived from cfg.
func NewFromConfig(ctx context.Context, cfg Config, opts ...Option) (*Manager, error) {
	log, err := configLogger(cfg)
	if err != nil {
		return nil, err
	}

	o := &options{loaders: make(map[string]registry.Loader)}
	for _, opt := range opts {
		opt(o)
	}

	loader, codes, err := sourceLoader(ctx, cfg, o)
	if err != nil {
		return nil, err
	}
	if len(codes) == 0 {
		return nil, fmt.Errorf("%w for source %q", ErrNoLocales, cfg.Source)
	}

	base := []Option{
		WithLoaders(registry.Same(loader, codes...)),
		WithSupportedLocales(codes...),
		WithDefaultLocale(cfg.DefaultLocale),
		WithFallbackLocale(cfg.FallbackLocale),
		WithConcurrency(cfg.Concurrency),
		WithDefaultKey(cfg.DefaultKey),
		WithErrorFormat(cfg.ErrorFormat),
		WithStrictParams(cfg.StrictParams),
		WithMissingMessagesLogging(cfg.LogMissing),
	}
	if log != nil {
		base = append(base, WithLogger(log))
	}

	m, err := New(append(base, opts...)...)
	if err != nil {
		return nil, err
	}

	if cfg.Preload {
		if err := m.LoadLocales(ctx, codes...); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// configLogger builds the stderr logger requested by cfg.LogLevel.
// It returns nil when no level is set. An unknown level or format is an error.
func configLogger(cfg Config) (*slog.Logger, error) {
	format := logger.FormatJSON
	if cfg.LogFormat != "" {
		f, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
		format = f
	}
	if cfg.LogLevel == "" {
		return nil, nil
	}
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	return logger.New(
		logger.WithOutput(os.Stderr),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithAttr(logger.Component("errmsg")),
		logger.WithRequestLocale(),
	), nil
}

func sourceLoader(ctx context.Context, cfg Config, o *options) (registry.Loader, []string, error) {
	switch cfg.Source {
	case SourceEmbedded, "":
		l, err := registry.NewFSLoader(locales.FS(), locales.Pattern)
		if err != nil {
			return nil, nil, err
		}
		codes := cfg.Locales
		if len(codes) == 0 {
			codes = locales.Supported()
		}
		return l, codes, nil

	case SourceDir:
		l, err := registry.NewFSLoader(os.DirFS(cfg.Dir), cfg.Pattern)
		if err != nil {
			return nil, nil, err
		}
		codes := cfg.Locales
		if len(codes) == 0 {
			if codes, err = l.Discover(); err != nil {
				return nil, nil, fmt.Errorf("discover catalogs in %s: %w", cfg.Dir, err)
			}
		}
		return l, codes, nil

	case SourceS3:
		client := o.s3Client
		if client == nil {
			c, err := registry.NewS3Client(ctx, cfg.S3)
			if err != nil {
				return nil, nil, err
			}
			client = c
		}
		l, err := registry.NewS3Loader(client, cfg.S3)
		if err != nil {
			return nil, nil, err
		}
		return l, cfg.Locales, nil

	case SourceRedis:
		client := o.redisClient
		if client == nil {
			c, err := registry.NewRedisClient(ctx, cfg.Redis.RedisConfig)
			if err != nil {
				return nil, nil, err
			}
			client = c
		}
		l, err := registry.NewRedisLoader(client, cfg.Redis.KeyPrefix, cfg.Redis.Format)
		if err != nil {
			return nil, nil, err
		}
		return l, cfg.Locales, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Source)
	}
}

// Defaults returns the Config equivalent to an empty environment.
func Defaults() Config {
	return Config{
		Source:      SourceEmbedded,
		Preload:     true,
		Concurrency: 4,
		DefaultKey:  formatter.DefaultKey,
		LogFormat:   "json",
		Dir:         "./locales",
		Pattern:     "%s.yaml",
		S3:          registry.S3Config{Region: "us-east-1", Format: "yaml"},
		Redis: RedisSource{
			RedisConfig: registry.RedisConfig{
				RetryAttempts:  3,
				RetryInterval:  time.Second,
				ConnectTimeout: 10 * time.Second,
			},
			KeyPrefix: "errmsg:catalog:",
			Format:    "json",
		},
	}
}
