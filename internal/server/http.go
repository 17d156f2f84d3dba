package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/MKhiriev/go-inventory-hub/internal/config"
	"github.com/MKhiriev/go-inventory-hub/internal/logger"
)

type httpServer struct {
	server *http.Server

	// sessions is the base context of every request; it is cancelled after
	// the graceful shutdown so hijacked WebSocket connections end too.
	sessions context.Context
	cancel   context.CancelFunc

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	sessions, cancel := context.WithCancel(context.Background())
	sessions = logger.WithContext(sessions)

	return &httpServer{
		server: &http.Server{
			Addr:    cfg.HTTPAddress,
			Handler: handler,
			// no WriteTimeout: WebSocket sessions are long-lived
			ReadHeaderTimeout: cfg.RequestTimeout,
			IdleTimeout:       2 * cfg.RequestTimeout,
			BaseContext:       func(net.Listener) context.Context { return sessions },
		},
		sessions: sessions,
		cancel:   cancel,
		logger:   logger,
	}
}

func (h *httpServer) serve() error {
	h.logger.Info().Str("address", h.server.Addr).Msg("launching HTTP server")
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (h *httpServer) shutdown(ctx context.Context) {
	h.logger.Info().Msg("HTTP server shutdown")
	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Str("func", "httpServer.shutdown").Msg("HTTP server did not stop gracefully")
	}
	h.cancel()
}
