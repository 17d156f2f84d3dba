package store

import (
	"context"

	"github.com/MKhiriev/go-inventory-hub/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// DraftRepository keeps the pending inventory patch of the reconciliation
// loop on the client device.
type DraftRepository interface {
	// SaveDraft replaces the stored draft of the inventory.
	SaveDraft(ctx context.Context, draft models.InventoryDraft) error
	// LoadDraft returns [ErrNotFound] when no draft is stored.
	LoadDraft(ctx context.Context, inventoryID int64) (models.InventoryDraft, error)
	DeleteDraft(ctx context.Context, inventoryID int64) error
}
