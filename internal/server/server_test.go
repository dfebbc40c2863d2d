package server

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-api-hub/internal/config"
	"github.com/MKhiriev/go-api-hub/internal/handler"
	"github.com/MKhiriev/go-api-hub/internal/logger"
	"github.com/MKhiriev/go-api-hub/internal/service"
	"github.com/MKhiriev/go-api-hub/internal/workers"
)

type workerFunc func(ctx context.Context) error

func (f workerFunc) Run(ctx context.Context) error { return f(ctx) }

func newTestServer(t *testing.T, address string, bg *workers.Workers) Server {
	t.Helper()
	cfg := config.Server{HTTPAddress: address}

	handlers, err := handler.NewHandlers(&service.Services{}, nil, cfg, logger.Nop())
	require.NoError(t, err)

	s, err := NewServer(handlers, bg, cfg, logger.Nop())
	require.NoError(t, err)
	return s
}

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(nil, nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)

	s, err = NewServer(&handler.Handlers{}, nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	started := make(chan struct{})
	bg := workers.NewWorkers(workerFunc(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return nil
	}))
	s := newTestServer(t, "127.0.0.1:0", bg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("worker was not started")
	}
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_WorkerFailureStopsServer(t *testing.T) {
	boom := errors.New("boom")
	s := newTestServer(t, "127.0.0.1:0", workers.NewWorkers(workerFunc(func(context.Context) error {
		return boom
	})))

	done := make(chan error, 1)
	go func() { done <- s.Run(context.Background()) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, boom)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_ListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	s := newTestServer(t, busy.Addr().String(), nil)
	assert.Error(t, s.Run(context.Background()))
}
