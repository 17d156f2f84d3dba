// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer clients: the client binary's
// view of the inventory hub server (REST and the WebSocket collaboration
// channel) and the server's view of the identity directory.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-inventory-hub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter defines communication with the inventory hub REST API.
// Implementations attach the bearer token and map transport errors to the
// sentinel values of this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter.
	Token() string

	// GetAppVersion reads GET /api/version. It needs no token.
	GetAppVersion(ctx context.Context) (models.AppVersion, error)

	// GetInventory fetches the authoritative inventory state.
	GetInventory(ctx context.Context, id int64) (models.Inventory, error)

	// UpdateInventory sends a compare-and-swap update. A stale version is
	// reported as [ErrConflict] (wrapped).
	UpdateInventory(ctx context.Context, id, version int64, patch models.InventoryPatch) (models.Inventory, error)

	// ReplaceImage uploads a new inventory image as multipart form data
	// carrying version. A stale version is reported as [ErrConflict].
	ReplaceImage(ctx context.Context, id, version int64, image models.ImageUpload) (models.Inventory, error)

	ListPosts(ctx context.Context, inventoryID int64) ([]models.DiscussionPost, error)
	CreatePost(ctx context.Context, inventoryID int64, content string) (models.DiscussionPost, error)
}

// RoomClient is the client side of the collaboration channel.
type RoomClient interface {
	// Connect dials the channel. Events are delivered on Events until the
	// connection drops or Close is called.
	Connect(ctx context.Context) error
	Join(inventoryID int64) error
	Leave(inventoryID int64) error
	// Events is closed when the connection ends.
	Events() <-chan models.RoomEvent
	Close() error
}

// IdentityDirectory looks up principals known to the identity provider.
type IdentityDirectory interface {
	// LookupUser returns [ErrNotFound] (wrapped) for an unknown id.
	LookupUser(ctx context.Context, id string) (models.Grantee, error)
}
