package handler

import (
	"github.com/MKhiriev/go-inventory-hub/internal/collab"
	"github.com/MKhiriev/go-inventory-hub/internal/config"
	"github.com/MKhiriev/go-inventory-hub/internal/handler/grpc"
	"github.com/MKhiriev/go-inventory-hub/internal/handler/http"
	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/internal/service"
	"github.com/MKhiriev/go-inventory-hub/internal/store"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// Dependencies are the runtime objects shared by the transports besides the
// service layer. Any of them may be nil.
type Dependencies struct {
	Hub    *collab.Hub
	Blobs  store.BlobStorage
	Pinger grpc.Pinger
}

func NewHandlers(services *service.Services, deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		session := collab.SessionConfig{
			WriteTimeout: cfg.Collab.WriteTimeout,
			PongTimeout:  cfg.Collab.PongTimeout,
		}
		handlers.HTTP = http.NewHandler(services, deps.Hub, session, deps.Blobs, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(deps.Pinger, cfg.Server.HealthProbeInterval, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
