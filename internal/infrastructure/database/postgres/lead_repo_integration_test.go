//go:build integration

package postgres

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/takweol/casematch/internal/config"
	"github.com/takweol/casematch/internal/domain/catalog"
	"github.com/takweol/casematch/internal/domain/lead"
	"github.com/takweol/casematch/internal/infrastructure/monitoring/logging"
	"github.com/takweol/casematch/pkg/errors"
)

func startPostgres(t *testing.T) config.DatabaseConfig {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:16-alpine"),
		tcpostgres.WithDatabase("casematch_test"),
		tcpostgres.WithUsername("casematch"),
		tcpostgres.WithPassword("casematch"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(time.Minute)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	return config.DatabaseConfig{
		Host:          host,
		Port:          port.Int(),
		User:          "casematch",
		Password:      "casematch",
		DBName:        "casematch_test",
		SSLMode:       "disable",
		MigrationPath: "../../../../migrations",
	}
}

func digestOf(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

func TestLeadRepositoryRoundTrip(t *testing.T) {
	cfg := startPostgres(t)
	log := logging.NewNopLogger()
	ctx := context.Background()

	require.NoError(t, RunMigrations(cfg, log))

	conn, err := NewConnection(ctx, cfg, log)
	require.NoError(t, err)
	t.Cleanup(conn.Close)

	repo := NewLeadRepository(conn, log)

	l, err := lead.New(catalog.WageTheft, "임금 체불", 80, 95, 200, 600, catalog.CostUnit,
		true, 210, digestOf("월급을 두 달째 못 받았어요"), time.Now())
	require.NoError(t, err)

	require.NoError(t, repo.Create(ctx, l))

	// Same conversation again conflicts.
	dup, err := lead.New(catalog.WageTheft, "임금 체불", 80, 95, 200, 600, catalog.CostUnit,
		true, 210, l.TranscriptDigest, time.Now())
	require.NoError(t, err)
	assert.True(t, errors.IsConflict(repo.Create(ctx, dup)))

	got, err := repo.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, l.CategoryID, got.CategoryID)
	assert.Equal(t, lead.StatusNew, got.Status)
	assert.Equal(t, l.TranscriptDigest, got.TranscriptDigest)

	require.NoError(t, got.TransitionTo(lead.StatusViewed, time.Now()))
	require.NoError(t, repo.UpdateStatus(ctx, got))

	listed, err := repo.List(ctx, lead.ListFilter{Status: lead.StatusViewed})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, l.ID, listed[0].ID)

	_, err = repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000")
	assert.True(t, errors.IsNotFound(err))
}
