// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Collaboration channel message types.
const (
	// MessageJoinInventory asks the server to add the connection to a room.
	MessageJoinInventory = "join_inventory"
	// MessageLeaveInventory asks the server to remove the connection from a room.
	MessageLeaveInventory = "leave_inventory"
	// EventNewPost is pushed to a room when a discussion post is created.
	EventNewPost = "new_post"
	// EventError reports a malformed client message.
	EventError = "error"
)

// RoomEvent is a server to client message of the collaboration channel.
type RoomEvent struct {
	Type        string          `json:"type"`
	InventoryID int64           `json:"inventoryId,omitempty"`
	Post        *DiscussionPost `json:"post,omitempty"`
	Message     string          `json:"message,omitempty"`
}

// RoomCommand is a client to server message of the collaboration channel.
type RoomCommand struct {
	Type        string `json:"type"`
	InventoryID int64  `json:"inventoryId"`
}
