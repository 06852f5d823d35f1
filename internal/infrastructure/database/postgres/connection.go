// Package postgres provides the pgx connection pool, schema migrations and
// the lead repository.
package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/takweol/casematch/internal/config"
	"github.com/takweol/casematch/internal/infrastructure/monitoring/logging"
	"github.com/takweol/casematch/pkg/errors"
)

const connectTimeout = 5 * time.Second

// Connection manages the PostgreSQL connection pool.
type Connection struct {
	pool   *pgxpool.Pool
	logger logging.Logger
}

// NewConnection opens a pool against cfg and verifies it with a ping.
func NewConnection(ctx context.Context, cfg config.DatabaseConfig, log logging.Logger) (*Connection, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "invalid database configuration")
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}
	if cfg.ConnMaxLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime
	}
	if cfg.ConnMaxIdleTime > 0 {
		poolCfg.MaxConnIdleTime = cfg.ConnMaxIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to create connection pool")
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "database unreachable")
	}

	log.Info("connected to postgres",
		logging.String("host", cfg.Host),
		logging.Int("port", cfg.Port),
		logging.String("database", cfg.DBName),
	)

	return &Connection{pool: pool, logger: log}, nil
}

// Pool returns the underlying pgx pool.
func (c *Connection) Pool() *pgxpool.Pool {
	return c.pool
}

// HealthCheck pings the pool, for readiness probes.
func (c *Connection) HealthCheck(ctx context.Context) error {
	if err := c.pool.Ping(ctx); err != nil {
		return errors.Wrap(err, errors.CodeDatabaseError, "postgres ping failed")
	}
	return nil
}

// Close releases the pool.
func (c *Connection) Close() {
	c.pool.Close()
	c.logger.Info("postgres connection pool closed")
}
