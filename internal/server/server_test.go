package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-inventory-hub/internal/config"
	"github.com/MKhiriev/go-inventory-hub/internal/handler"
	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/internal/service"
	"github.com/MKhiriev/go-inventory-hub/internal/workers"
)

func newTestHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()
	h, err := handler.NewHandlers(&service.Services{}, handler.Dependencies{}, config.StructuredConfig{Server: cfg}, logger.Nop())
	require.NoError(t, err)
	return h
}

func TestNewServer_NoTransports(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, nil, config.Server{}, logger.Nop())
	require.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_StopsOnCancel(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:    "127.0.0.1:0",
		GRPCAddress:    "127.0.0.1:0",
		RequestTimeout: time.Second,
	}
	bg := workers.NewWorkers(logger.Nop())

	srv, err := NewServer(newTestHandlers(t, cfg), bg, cfg, logger.Nop())
	require.NoError(t, err)
	require.Len(t, srv.(*server).runners, 2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.(*server).run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_WorkerFailureStopsTransports(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second}
	errRelay := errors.New("relay subscription lost")

	bg := workers.NewWorkers(logger.Nop())
	bg.Add("relay", workers.Func(func(context.Context) error { return errRelay }))

	srv, err := NewServer(newTestHandlers(t, cfg), bg, cfg, logger.Nop())
	require.NoError(t, err)

	select {
	case err := <-runAsync(srv.(*server)):
		require.ErrorIs(t, err, errRelay)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_ListenFailure(t *testing.T) {
	cfg := config.Server{GRPCAddress: "256.0.0.1:1"}

	srv, err := NewServer(newTestHandlers(t, cfg), nil, cfg, logger.Nop())
	require.NoError(t, err)

	select {
	case err := <-runAsync(srv.(*server)):
		require.Error(t, err)
		assert.Contains(t, err.Error(), "gRPC listen")
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func runAsync(s *server) <-chan error {
	done := make(chan error, 1)
	go func() { done <- s.run(context.Background()) }()
	return done
}
