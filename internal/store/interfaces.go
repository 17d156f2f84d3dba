package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-inventory-hub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// InventoryRepository persists inventories and their tag sets.
type InventoryRepository interface {
	// CreateInventory inserts the inventory with version 1 and links its tags.
	CreateInventory(ctx context.Context, req models.InventoryCreateRequest) (models.Inventory, error)
	GetInventory(ctx context.Context, id int64) (models.Inventory, error)
	// ListInventories returns inventories owned by or granted to userID.
	ListInventories(ctx context.Context, userID string) ([]models.Inventory, error)
	// UpdateInventory is a compare-and-swap write. It returns a
	// [*ConflictError] when expectedVersion is stale. When patch.Tags is
	// set the tag set is replaced in the same transaction.
	UpdateInventory(ctx context.Context, id, expectedVersion int64, patch models.InventoryPatch) (models.Inventory, error)
	// DeleteInventory removes the inventory and everything it owns.
	DeleteInventory(ctx context.Context, id int64) error
	SearchInventories(ctx context.Context, text string) ([]models.Inventory, error)
}

// ItemRepository persists items.
type ItemRepository interface {
	CreateItem(ctx context.Context, inventoryID int64, values models.SlotValues) (models.Item, error)
	GetItem(ctx context.Context, inventoryID, itemID int64) (models.Item, error)
	ListItems(ctx context.Context, inventoryID int64) ([]models.Item, error)
	// UpdateItem is a compare-and-swap write of the given slots.
	UpdateItem(ctx context.Context, inventoryID, itemID, expectedVersion int64, values models.SlotValues) (models.Item, error)
	// DeleteItem is a compare-and-swap delete.
	DeleteItem(ctx context.Context, inventoryID, itemID, expectedVersion int64) error
	// NumericStats aggregates the given numeric slots.
	NumericStats(ctx context.Context, inventoryID int64, keys []models.SlotKey) ([]models.FieldStats, error)
}

// FieldDefinitionRepository persists field definitions.
type FieldDefinitionRepository interface {
	ListFieldDefinitions(ctx context.Context, inventoryID int64) ([]models.FieldDefinition, error)
	// UpsertFieldDefinitions applies all patches in one transaction. A
	// patch for a missing definition creates it only when it enables the
	// field.
	UpsertFieldDefinitions(ctx context.Context, inventoryID int64, patches []models.FieldDefinitionPatch) error
}

// GrantRepository persists access grants.
type GrantRepository interface {
	HasGrant(ctx context.Context, inventoryID int64, userID string) (bool, error)
	ListGrants(ctx context.Context, inventoryID int64) ([]models.AccessGrant, error)
	// CreateGrant returns [ErrGrantAlreadyExists] for a duplicate pair.
	CreateGrant(ctx context.Context, inventoryID int64, userID string) (models.AccessGrant, error)
	// DeleteGrants returns the number of removed grants.
	DeleteGrants(ctx context.Context, inventoryID int64, userIDs []string) (int64, error)
}

// PostRepository persists discussion posts.
type PostRepository interface {
	ListPosts(ctx context.Context, inventoryID int64) ([]models.DiscussionPost, error)
	GetPost(ctx context.Context, inventoryID, postID int64) (models.DiscussionPost, error)
	CreatePost(ctx context.Context, post models.DiscussionPost) (models.DiscussionPost, error)
	DeletePost(ctx context.Context, inventoryID, postID int64) error
}

// CatalogRepository reads categories and tags.
type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	SearchTags(ctx context.Context, prefix string) ([]models.Tag, error)
}

// BlobStorage stores binary objects and returns retrievable URLs.
type BlobStorage interface {
	// Put stores data and returns its public URL.
	Put(ctx context.Context, data []byte, contentType string) (string, error)
	// Delete removes the blob behind url. Unknown URLs are ignored.
	Delete(ctx context.Context, url string) error
	// Open returns the blob stored under key.
	Open(key string) (io.ReadSeekCloser, error)
}
