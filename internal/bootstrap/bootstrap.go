// Package bootstrap wires configuration into a running service, shared by
// the API server binary and the CLI serve command.
package bootstrap

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/takweol/casematch/internal/analysis"
	appconsultation "github.com/takweol/casematch/internal/application/consultation"
	"github.com/takweol/casematch/internal/config"
	"github.com/takweol/casematch/internal/domain/lead"
	"github.com/takweol/casematch/internal/infrastructure/database/memdb"
	"github.com/takweol/casematch/internal/infrastructure/database/postgres"
	"github.com/takweol/casematch/internal/infrastructure/database/redis"
	"github.com/takweol/casematch/internal/infrastructure/messaging/kafka"
	"github.com/takweol/casematch/internal/infrastructure/monitoring/logging"
	appprom "github.com/takweol/casematch/internal/infrastructure/monitoring/prometheus"
	apphttp "github.com/takweol/casematch/internal/interfaces/http"
	"github.com/takweol/casematch/internal/interfaces/http/handlers"
)

// App holds the assembled service and its teardown hooks.
type App struct {
	Server  *apphttp.Server
	Logger  logging.Logger
	cleanup []func()
}

// New assembles logging, storage, cache, messaging and the HTTP server from
// cfg.  Infrastructure pieces without configuration degrade gracefully: no
// database means an in-memory lead store, no brokers means dropped events.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return nil, err
	}
	logging.SetDefault(logger)

	app := &App{Logger: logger}
	metrics := appprom.New()
	checks := map[string]handlers.HealthCheck{}

	var leadRepo lead.Repository = memdb.NewLeadRepository()
	if cfg.Database.Host != "" {
		if err := postgres.RunMigrations(cfg.Database, logger); err != nil {
			return nil, err
		}
		conn, err := postgres.NewConnection(ctx, cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		app.cleanup = append(app.cleanup, conn.Close)
		leadRepo = postgres.NewLeadRepository(conn, logger)
		checks["postgres"] = conn.HealthCheck
	} else {
		logger.Warn("no database configured, leads are stored in memory")
	}

	var cache redis.Cache
	if cfg.Cache.Enabled {
		client, err := redis.NewClient(cfg.Redis, logger)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.cleanup = append(app.cleanup, func() { _ = client.Close() })
		cache = redis.NewCache(client, logger,
			redis.WithPrefix(cfg.Redis.KeyPrefix),
			redis.WithDefaultTTL(cfg.Cache.ResultTTL),
		)
		checks["redis"] = cache.Ping
	}

	producer := kafka.NewProducer(cfg.Kafka, logger)
	app.cleanup = append(app.cleanup, func() { _ = producer.Close() })

	service := appconsultation.NewService(
		analysis.NewEngine(nil),
		cache, cfg.Cache,
		leadRepo, producer,
		metrics, logger,
	)

	app.Server = apphttp.NewServer(cfg.Server, apphttp.RouterDeps{
		Service: service,
		Metrics: metrics,
		Logger:  logger,
		Checks:  checks,
	}, logger)
	return app, nil
}

// Run serves until a termination signal or ctx cancellation, then drains.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	errCh := make(chan error, 1)
	go func() { errCh <- a.Server.Start() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		a.Logger.Info("shutdown signal received", logging.String("signal", sig.String()))
	case <-ctx.Done():
	}
	return a.Server.Stop(context.Background())
}

// Close releases infrastructure connections in reverse order.
func (a *App) Close() {
	for i := len(a.cleanup) - 1; i >= 0; i-- {
		a.cleanup[i]()
	}
	a.cleanup = nil
}
