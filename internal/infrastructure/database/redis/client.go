// Package redis provides the Redis client and the analysis-result cache.
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/takweol/casematch/internal/config"
	"github.com/takweol/casematch/internal/infrastructure/monitoring/logging"
	"github.com/takweol/casematch/pkg/errors"
)

// Client wraps a go-redis client with lifecycle management.
type Client struct {
	rdb    redis.UniversalClient
	logger logging.Logger
}

// NewClient connects to a standalone Redis node and verifies it with a ping.
func NewClient(cfg config.RedisConfig, log logging.Logger) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errors.Wrap(err, errors.CodeCacheError, "redis unreachable")
	}

	log.Info("connected to redis", logging.String("addr", cfg.Addr))
	return &Client{rdb: rdb, logger: log}, nil
}

// newClientWithRDB injects a prebuilt client, for tests.
func newClientWithRDB(rdb redis.UniversalClient, log logging.Logger) *Client {
	return &Client{rdb: rdb, logger: log}
}

// Ping checks liveness, for readiness probes.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return errors.Wrap(err, errors.CodeCacheError, "redis ping failed")
	}
	return nil
}

// Close releases the connection pool.
func (c *Client) Close() error {
	c.logger.Info("redis client closed")
	return c.rdb.Close()
}
