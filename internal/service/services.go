package service

import (
	"github.com/MKhiriev/go-inventory-hub/internal/access"
	"github.com/MKhiriev/go-inventory-hub/internal/adapter"
	"github.com/MKhiriev/go-inventory-hub/internal/config"
	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/internal/store"
	"github.com/MKhiriev/go-inventory-hub/models"
)

type Services struct {
	AppInfoService    AppInfoService
	AuthService       AuthService
	InventoryService  InventoryService
	ItemService       ItemService
	FieldService      FieldService
	AccessService     AccessService
	DiscussionService DiscussionService
	CatalogService    CatalogService
}

// NewServices wires the server services over storages. publisher receives
// new_post events; directory may be nil when no identity directory is
// configured.
func NewServices(storages *store.Storages, publisher RoomPublisher, directory adapter.IdentityDirectory, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	resolver := access.NewResolver(storages.GrantRepository, logger)

	return &Services{
		AppInfoService: appInfo,
		AuthService:    NewAuthService(cfg.App, logger),
		InventoryService: NewInventoryValidationService().Wrap(
			NewInventoryService(storages.InventoryRepository, storages.BlobStorage, resolver, logger)),
		ItemService: NewItemValidationService().Wrap(
			NewItemService(storages.ItemRepository, storages.FieldDefinitionRepository, logger)),
		FieldService: NewFieldValidationService().Wrap(
			NewFieldService(storages.FieldDefinitionRepository, logger)),
		AccessService: NewAccessValidationService().Wrap(
			NewAccessService(storages.InventoryRepository, storages.GrantRepository, resolver, directory, logger)),
		DiscussionService: NewDiscussionValidationService().Wrap(
			NewDiscussionService(storages.PostRepository, publisher, logger)),
		CatalogService: NewCatalogService(storages.CatalogRepository, logger),
	}, nil
}
