package service

import (
	"context"

	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/internal/store"
	"github.com/MKhiriev/go-inventory-hub/models"
)

type catalogService struct {
	catalog store.CatalogRepository

	logger *logger.Logger
}

func NewCatalogService(catalog store.CatalogRepository, logger *logger.Logger) CatalogService {
	return &catalogService{
		catalog: catalog,
		logger:  logger,
	}
}

func (s *catalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.catalog.ListCategories(ctx)
}

func (s *catalogService) SearchTags(ctx context.Context, prefix string) ([]models.Tag, error) {
	return s.catalog.SearchTags(ctx, prefix)
}
