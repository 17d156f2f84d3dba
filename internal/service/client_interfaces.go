package service

import (
	"context"

	"github.com/MKhiriev/go-inventory-hub/models"
)

// NotificationKind classifies reconciler notifications.
type NotificationKind int

const (
	// NotificationConflict means the server rejected the local version.
	// Local edits are kept and flushing stops until Reload.
	NotificationConflict NotificationKind = iota + 1
	// NotificationFlushFailed means a flush attempt failed for another
	// reason and will be retried on the next tick.
	NotificationFlushFailed
	// NotificationSaved means pending edits were confirmed by the server.
	NotificationSaved
)

func (k NotificationKind) String() string {
	switch k {
	case NotificationConflict:
		return "conflict"
	case NotificationFlushFailed:
		return "flush_failed"
	case NotificationSaved:
		return "saved"
	}
	return "unknown"
}

// Notification is emitted by the reconciler for the user interface.
type Notification struct {
	Kind        NotificationKind
	InventoryID int64
	// Version is the confirmed version after the event.
	Version int64
	Err     error
}

// SettingsReconciler lets a user edit inventory settings locally while
// writes to the server are debounced and batched.
type SettingsReconciler interface {
	// Start loads the authoritative inventory, restores a persisted draft
	// and starts the flush timer.
	Start(ctx context.Context, inventoryID int64) error
	// Edit merges patch into the local buffer and re-arms the debounce timer.
	Edit(patch models.InventoryPatch)
	// Reload discards local edits and refetches the inventory. It clears
	// the stale state left by a conflict.
	Reload(ctx context.Context) error
	// ReplaceImage uploads an image immediately with the confirmed version.
	ReplaceImage(ctx context.Context, data []byte, contentType string) error
	// State returns the confirmed inventory with local edits applied.
	State() models.Inventory
	Notifications() <-chan Notification
	// Stop cancels timers, persists undebounced edits and waits for the loop.
	Stop()
}
