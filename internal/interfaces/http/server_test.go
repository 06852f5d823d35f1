package http

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takweol/casematch/internal/analysis"
	appconsultation "github.com/takweol/casematch/internal/application/consultation"
	"github.com/takweol/casematch/internal/config"
	"github.com/takweol/casematch/internal/domain/lead"
	"github.com/takweol/casematch/internal/infrastructure/monitoring/logging"
	appprom "github.com/takweol/casematch/internal/infrastructure/monitoring/prometheus"
)

func TestServerStartStop(t *testing.T) {
	cfg := config.ServerConfig{
		Port:            0, // random free port
		Mode:            "test",
		ShutdownTimeout: 5 * time.Second,
	}
	svc := appconsultation.NewService(
		analysis.NewEngine(nil), nil, config.CacheConfig{},
		&memLeadRepo{leads: map[string]*lead.Lead{}}, dropPublisher{},
		appprom.New(), logging.NewNopLogger(),
	)
	srv := NewServer(cfg, RouterDeps{Service: svc, Logger: logging.NewNopLogger()}, logging.NewNopLogger())
	require.NotNil(t, srv.Handler())

	done := make(chan error, 1)
	go func() { done <- srv.Start() }()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, srv.Stop(context.Background()))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
