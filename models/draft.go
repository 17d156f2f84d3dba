package models

import "time"

// InventoryDraft is an inventory patch that was debounced on the client
// but not yet confirmed by the server.
type InventoryDraft struct {
	InventoryID int64
	// BaseVersion is the confirmed version the patch was written against.
	BaseVersion int64
	Patch       InventoryPatch
	UpdatedAt   time.Time
}
