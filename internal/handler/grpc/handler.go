package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-inventory-hub/internal/logger"
)

// DefaultProbeInterval is used when Handler is created with a zero interval.
const DefaultProbeInterval = 10 * time.Second

// Pinger reports whether a backend the service depends on is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler is the gRPC transport of the inventory hub. It serves the
// standard health checking protocol so that orchestrators can probe the
// instance; the reported status follows the database reachability.
type Handler struct {
	health   *health.Server
	pinger   Pinger
	interval time.Duration

	logger *logger.Logger
}

// NewHandler creates a handler reporting NOT_SERVING until the first
// successful probe. A nil pinger reports SERVING immediately.
func NewHandler(pinger Pinger, interval time.Duration, logger *logger.Logger) *Handler {
	if interval <= 0 {
		interval = DefaultProbeInterval
	}

	h := &Handler{
		health:   health.NewServer(),
		pinger:   pinger,
		interval: interval,
		logger:   logger,
	}
	h.setServing(pinger == nil)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Run probes the pinger until ctx is done and marks the service
// NOT_SERVING on return.
func (h *Handler) Run(ctx context.Context) error {
	defer h.health.Shutdown()

	if h.pinger == nil {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			h.probe(ctx)
		}
	}
}

func (h *Handler) probe(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, h.interval)
	defer cancel()

	err := h.pinger.Ping(ctx)
	if err != nil && ctx.Err() == nil {
		h.logger.Warn().Err(err).Str("func", "Handler.probe").Msg("dependency is unreachable")
	}
	h.setServing(err == nil)
}

func (h *Handler) setServing(ok bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if ok {
		status = healthpb.HealthCheckResponse_SERVING
	}
	// the empty service name is the overall server status
	h.health.SetServingStatus("", status)
}
