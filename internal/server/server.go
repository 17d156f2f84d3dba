package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/go-inventory-hub/internal/config"
	"github.com/MKhiriev/go-inventory-hub/internal/handler"
	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/internal/workers"
)

// ShutdownTimeout bounds the graceful stop of every transport.
const ShutdownTimeout = 15 * time.Second

type server struct {
	runners []runner
	workers *workers.Workers
	logger  *logger.Logger
}

// NewServer creates the transports for the configured addresses. bg runs
// alongside them and is stopped on shutdown; it may be nil.
func NewServer(handlers *handler.Handlers, bg *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{workers: bg, logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		s.runners = append(s.runners, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		s.runners = append(s.runners, newGRPCServer(handlers.GRPC, cfg, logger))
		if bg != nil {
			bg.Add("health-probe", handlers.GRPC)
		}
	}

	if len(s.runners) == 0 {
		return nil, errNoServersAreCreated
	}
	return s, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown(ctx context.Context) {
	var wg sync.WaitGroup
	for _, r := range s.runners {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.shutdown(ctx)
		}()
	}
	wg.Wait()
}

// run serves until ctx is done or a transport or worker fails, then stops
// everything else.
func (s *server) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errs := make(chan error, len(s.runners)+1)
	var wg sync.WaitGroup

	for _, r := range s.runners {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := r.serve(); err != nil {
				errs <- err
				cancel()
			}
		}()
	}

	if s.workers != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.workers.Run(ctx); err != nil {
				errs <- err
				cancel()
			}
		}()
	}

	<-ctx.Done()
	s.logger.Info().Msg("stopping server...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancelShutdown()
	s.Shutdown(shutdownCtx)

	wg.Wait()
	close(errs)

	var joined error
	for err := range errs {
		joined = errors.Join(joined, err)
	}
	if joined != nil {
		return fmt.Errorf("server stopped with error: %w", joined)
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}
