package registry

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/errmsg/pkg/catalog"
)

// RedisClient is the subset of redis.Cmdable used by RedisLoader.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisConfig holds connection settings for a catalog redis.
type RedisConfig struct {
	URL            string        `env:"URL"`                              // e.g. "redis://:password@localhost:6379/0"
	RetryAttempts  int           `env:"RETRY_ATTEMPTS" envDefault:"3"`    // Connection attempts before giving up; at least one
	RetryInterval  time.Duration `env:"RETRY_INTERVAL" envDefault:"1s"`   // Wait between attempts
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"10s"` // Bound on the whole connect sequence
}

// NewRedisClient connects to cfg.URL, pinging until the server answers or the
// attempts run out.
func NewRedisClient(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	if cfg.URL == "" {
		return nil, ErrMissingRedisURL
	}
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisURL, err)
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	attempts := max(cfg.RetryAttempts, 1)
	var pingErr error
	for i := range attempts {
		client := redis.NewClient(opts)
		if pingErr = client.Ping(ctx).Err(); pingErr == nil {
			return client, nil
		}
		_ = client.Close()

		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}
	return nil, errors.Join(ErrRedisNotReady, pingErr)
}

// RedisLoader reads catalog documents stored as plain string values under
// "<prefix><locale>".
type RedisLoader struct {
	client RedisClient
	prefix string
	parser catalog.Parser
}

// NewRedisLoader creates a loader reading keys with prefix, decoded as format
// (yaml, json or toml; json when empty).
func NewRedisLoader(client RedisClient, prefix, format string) (*RedisLoader, error) {
	if client == nil {
		return nil, ErrNilRedisClient
	}
	format = strings.TrimPrefix(strings.ToLower(format), ".")
	if format == "" {
		format = "json"
	}
	p := catalog.ParserForExtension(format)
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	return &RedisLoader{client: client, prefix: prefix, parser: p}, nil
}

// Key returns the redis key holding the catalog for code.
func (l *RedisLoader) Key(code string) string {
	return l.prefix + code
}

// Load implements Loader.
func (l *RedisLoader) Load(ctx context.Context, code string) (map[string]any, error) {
	key := l.Key(code)
	data, err := l.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("redis key %q: %w", key, fs.ErrNotExist)
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %q: %w", key, err)
	}
	return l.parser.Parse(ctx, data)
}
