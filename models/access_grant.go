// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AccessGrant is an explicit write permission of one principal on one
// inventory.
type AccessGrant struct {
	InventoryID int64     `json:"inventoryId"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// GrantRequest is the body of POST /api/inventories/{id}/access.
type GrantRequest struct {
	TargetUserID string `json:"targetUserId"`
}

// RevokeRequest is the body of DELETE /api/inventories/{id}/access.
type RevokeRequest struct {
	UserIDs []string `json:"userIds"`
}

// Grantee describes a principal holding a grant, enriched from the
// identity directory when it is available.
type Grantee struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	ImageURL string `json:"imageUrl"`
}
