// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DiscussionPost is a message in an inventory's discussion. The author's
// email and avatar are copied at creation time.
type DiscussionPost struct {
	ID           int64     `json:"id"`
	InventoryID  int64     `json:"inventoryId"`
	UserID       string    `json:"userId"`
	UserEmail    string    `json:"userEmail"`
	UserImageURL *string   `json:"userImageUrl"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PostCreateRequest is the body of POST /api/inventories/{id}/posts.
type PostCreateRequest struct {
	Content string `json:"content"`
}
