package service

import (
	"context"

	"github.com/MKhiriev/go-inventory-hub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=InventoryServiceWrapper,ItemServiceWrapper,FieldServiceWrapper,AccessServiceWrapper,DiscussionServiceWrapper

// Inventory scoped operations receive the [models.AuthorizationContext]
// computed once per request. Mutations check it before touching storage.

type InventoryService interface {
	// ListInventories returns inventories owned by or granted to principal.
	ListInventories(ctx context.Context, principal models.Principal) ([]models.Inventory, error)
	// GetInventory returns the inventory with WriteAccess resolved for principal.
	GetInventory(ctx context.Context, principal models.Principal, id int64) (models.Inventory, error)
	// CreateInventory stores a new inventory at version 1. image is optional.
	CreateInventory(ctx context.Context, principal models.Principal, req models.InventoryCreateRequest, image *models.ImageUpload) (models.Inventory, error)
	// UpdateInventory is a compare-and-swap update of the settings.
	UpdateInventory(ctx context.Context, authz models.AuthorizationContext, req models.InventoryUpdateRequest) (models.Inventory, error)
	// ReplaceImage stores a new image and swaps it in with compare-and-swap.
	ReplaceImage(ctx context.Context, authz models.AuthorizationContext, expectedVersion int64, image models.ImageUpload) (models.Inventory, error)
	DeleteInventory(ctx context.Context, authz models.AuthorizationContext) error
	SearchInventories(ctx context.Context, query string) ([]models.Inventory, error)
}

type ItemService interface {
	// ListItems returns the items together with the enabled fields in
	// display order.
	ListItems(ctx context.Context, inventoryID int64) (models.ItemList, error)
	// Stats aggregates every enabled numeric field.
	Stats(ctx context.Context, inventoryID int64) ([]models.FieldStats, error)
	CreateItem(ctx context.Context, authz models.AuthorizationContext, req models.ItemCreateRequest) (models.Item, error)
	UpdateItem(ctx context.Context, authz models.AuthorizationContext, itemID int64, req models.ItemUpdateRequest) (models.Item, error)
	DeleteItem(ctx context.Context, authz models.AuthorizationContext, itemID, expectedVersion int64) error
}

type FieldService interface {
	ListFields(ctx context.Context, inventoryID int64, enabledOnly bool) ([]models.FieldDefinition, error)
	// UpdateFields applies the batch as a whole or not at all and returns
	// the resulting definitions.
	UpdateFields(ctx context.Context, authz models.AuthorizationContext, patches []models.FieldDefinitionPatch) ([]models.FieldDefinition, error)
}

type AccessService interface {
	// Authorize loads the inventory and resolves write access for principal.
	Authorize(ctx context.Context, principal models.Principal, inventoryID int64) (models.AuthorizationContext, error)
	ListGrants(ctx context.Context, authz models.AuthorizationContext) ([]models.Grantee, error)
	Grant(ctx context.Context, authz models.AuthorizationContext, req models.GrantRequest) (models.AccessGrant, error)
	Revoke(ctx context.Context, authz models.AuthorizationContext, req models.RevokeRequest) error
}

type DiscussionService interface {
	ListPosts(ctx context.Context, inventoryID int64) ([]models.DiscussionPost, error)
	// CreatePost stores the post and announces it to the inventory room.
	CreatePost(ctx context.Context, authz models.AuthorizationContext, req models.PostCreateRequest) (models.DiscussionPost, error)
	DeletePost(ctx context.Context, authz models.AuthorizationContext, postID int64) error
}

type CatalogService interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	SearchTags(ctx context.Context, prefix string) ([]models.Tag, error)
}

type AuthService interface {
	// ParseToken verifies a principal token issued by the identity provider.
	ParseToken(ctx context.Context, tokenString string) (models.Principal, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.AppVersion
}

// RoomPublisher delivers events to the members of an inventory room.
type RoomPublisher interface {
	Publish(ctx context.Context, event models.RoomEvent) int
}

// InventoryServiceWrapper defines middleware composition for
// InventoryService. Implementations wrap an existing service to add
// behavior such as validation.
type InventoryServiceWrapper interface {
	Wrap(InventoryService) InventoryService
}

type ItemServiceWrapper interface {
	Wrap(ItemService) ItemService
}

type FieldServiceWrapper interface {
	Wrap(FieldService) FieldService
}

type AccessServiceWrapper interface {
	Wrap(AccessService) AccessService
}

type DiscussionServiceWrapper interface {
	Wrap(DiscussionService) DiscussionService
}
