package http

import (
	"github.com/MKhiriev/go-inventory-hub/internal/collab"
	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/internal/service"
	"github.com/MKhiriev/go-inventory-hub/internal/store"
)

type Handler struct {
	services *service.Services

	// hub serves the collaboration channel; nil disables /api/ws.
	hub     *collab.Hub
	session collab.SessionConfig

	// blobs serves stored images under /files; nil disables the route.
	blobs store.BlobStorage

	logger *logger.Logger
}

func NewHandler(services *service.Services, hub *collab.Hub, session collab.SessionConfig, blobs store.BlobStorage, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		hub:      hub,
		session:  session,
		blobs:    blobs,
		logger:   logger,
	}
}
