package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/takweol/casematch/internal/infrastructure/monitoring/logging"
	"github.com/takweol/casematch/pkg/errors"
)

var (
	// ErrCacheMiss is returned by Get when the key is absent or negatively
	// cached.
	ErrCacheMiss = errors.New(errors.CodeNotFound, "cache miss")
)

// nullSentinel marks a negatively cached key so repeated misses do not hit
// the loader on every request.
const nullSentinel = "__null__"

// Cache is the key/value surface the application layer uses.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)
	GetOrSet(ctx context.Context, key string, dest interface{}, ttl time.Duration, loader func(ctx context.Context) (interface{}, error)) error
	Ping(ctx context.Context) error
}

type redisCache struct {
	client       *Client
	logger       logging.Logger
	prefix       string
	defaultTTL   time.Duration
	nullCacheTTL time.Duration
	singleflight singleflight.Group
}

// CacheOption tunes a cache instance.
type CacheOption func(*redisCache)

// WithPrefix overrides the key namespace.
func WithPrefix(prefix string) CacheOption {
	return func(c *redisCache) { c.prefix = prefix }
}

// WithDefaultTTL overrides the TTL used when a caller passes zero.
func WithDefaultTTL(ttl time.Duration) CacheOption {
	return func(c *redisCache) { c.defaultTTL = ttl }
}

// WithNullCacheTTL overrides the lifetime of negative cache entries.
func WithNullCacheTTL(ttl time.Duration) CacheOption {
	return func(c *redisCache) { c.nullCacheTTL = ttl }
}

// NewCache builds a JSON-serializing cache over client.
func NewCache(client *Client, log logging.Logger, opts ...CacheOption) Cache {
	c := &redisCache{
		client:       client,
		logger:       log,
		prefix:       "casematch:",
		defaultTTL:   10 * time.Minute,
		nullCacheTTL: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *redisCache) fullKey(key string) string {
	return c.prefix + key
}

// jitterTTL spreads expirations +/- 10% so cached results written in a burst
// do not all expire in the same instant.
func (c *redisCache) jitterTTL(ttl time.Duration) time.Duration {
	if ttl == 0 {
		return 0
	}
	jitter := float64(ttl) * 0.1 * (rand.Float64()*2 - 1)
	return ttl + time.Duration(jitter)
}

func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.rdb.Get(ctx, c.fullKey(key)).Bytes()
	if err == redis.Nil {
		return ErrCacheMiss
	}
	if err != nil {
		return errors.Wrap(err, errors.CodeCacheError, "failed to get from cache")
	}
	if string(data) == nullSentinel {
		return ErrCacheMiss
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return errors.Wrap(err, errors.CodeSerialization, "failed to decode cached value")
	}
	return nil
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, errors.CodeSerialization, "failed to encode cache value")
	}
	if ttl == 0 {
		ttl = c.defaultTTL
	}
	if err := c.client.rdb.Set(ctx, c.fullKey(key), data, c.jitterTTL(ttl)).Err(); err != nil {
		return errors.Wrap(err, errors.CodeCacheError, "failed to set cache value")
	}
	return nil
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.fullKey(k)
	}
	if err := c.client.rdb.Del(ctx, full...).Err(); err != nil {
		return errors.Wrap(err, errors.CodeCacheError, "failed to delete cache keys")
	}
	return nil
}

func (c *redisCache) Exists(ctx context.Context, key string) (bool, error) {
	n, err := c.client.rdb.Exists(ctx, c.fullKey(key)).Result()
	if err != nil {
		return false, errors.Wrap(err, errors.CodeCacheError, "failed to check cache key")
	}
	return n > 0, nil
}

// GetOrSet returns the cached value for key, or runs loader and caches the
// result.  Concurrent calls for the same key share one loader execution.
// A loader returning (nil, nil) is negatively cached.
func (c *redisCache) GetOrSet(ctx context.Context, key string, dest interface{}, ttl time.Duration, loader func(ctx context.Context) (interface{}, error)) error {
	if err := c.Get(ctx, key, dest); err == nil {
		return nil
	} else if err != ErrCacheMiss && errors.GetCode(err) != errors.CodeCacheError {
		return err
	}

	val, err, _ := c.singleflight.Do(key, func() (interface{}, error) {
		loaded, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		if loaded == nil {
			if err := c.client.rdb.Set(ctx, c.fullKey(key), nullSentinel, c.nullCacheTTL).Err(); err != nil {
				c.logger.Warn("failed to write negative cache entry", logging.Err(err))
			}
			return nil, nil
		}
		if err := c.Set(ctx, key, loaded, ttl); err != nil {
			c.logger.Warn("failed to populate cache", logging.String("key", key), logging.Err(err))
		}
		return loaded, nil
	})
	if err != nil {
		return err
	}
	if val == nil {
		return ErrCacheMiss
	}

	data, err := json.Marshal(val)
	if err != nil {
		return errors.Wrap(err, errors.CodeSerialization, "failed to encode loaded value")
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return errors.Wrap(err, errors.CodeSerialization, "failed to decode loaded value")
	}
	return nil
}

func (c *redisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx)
}
