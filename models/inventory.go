// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Inventory is a titled collection of items owned by one principal.
//
// Version starts at 1 and grows by exactly one on every successful
// compare-and-swap update.
type Inventory struct {
	ID          int64     `json:"id"`
	CreatorID   string    `json:"creatorId"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	CategoryID  *int64    `json:"categoryId"`
	IsPublic    bool      `json:"isPublic"`
	Version     int64     `json:"version"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// WriteAccess is computed per request for the requesting principal
	// and is never persisted.
	WriteAccess bool `json:"writeAccess"`
}

// InventoryPatch is a partial inventory update. Nil fields are left
// untouched. An empty Description clears the stored description.
type InventoryPatch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	CategoryID  *int64    `json:"categoryId,omitempty"`
	IsPublic    *bool     `json:"isPublic,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`

	// ImageURL is set only by the image replacement flow.
	ImageURL *string `json:"-"`
}

// IsEmpty reports whether the patch changes nothing.
func (p InventoryPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.CategoryID == nil &&
		p.IsPublic == nil && p.Tags == nil && p.ImageURL == nil
}

// Merge overlays other on top of p and returns the result.
func (p InventoryPatch) Merge(other InventoryPatch) InventoryPatch {
	if other.Title != nil {
		p.Title = other.Title
	}
	if other.Description != nil {
		p.Description = other.Description
	}
	if other.CategoryID != nil {
		p.CategoryID = other.CategoryID
	}
	if other.IsPublic != nil {
		p.IsPublic = other.IsPublic
	}
	if other.Tags != nil {
		p.Tags = other.Tags
	}
	if other.ImageURL != nil {
		p.ImageURL = other.ImageURL
	}
	return p
}

// InventoryUpdateRequest is the body of PATCH /api/inventories/{id}.
type InventoryUpdateRequest struct {
	// Version is the version the client last confirmed from the server.
	Version int64 `json:"version"`
	InventoryPatch
}

// InventoryCreateRequest is the body of POST /api/inventories.
type InventoryCreateRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	CategoryID  *int64   `json:"categoryId,omitempty"`
	IsPublic    bool     `json:"isPublic"`
	Tags        []string `json:"tags,omitempty"`

	CreatorID string  `json:"-"`
	ImageURL  *string `json:"-"`
}

// ImageUpload is a raw image received from a client before normalization.
type ImageUpload struct {
	Data        []byte
	ContentType string
}
