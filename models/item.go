// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Item is one row of an inventory. It only stores slot values; labels and
// visibility come from the inventory's field definitions.
type Item struct {
	ID          int64      `json:"id"`
	InventoryID int64      `json:"inventoryId"`
	Values      SlotValues `json:"values"`
	Version     int64      `json:"version"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ItemCreateRequest is the body of POST /api/inventories/{id}/items.
type ItemCreateRequest struct {
	Values SlotValues `json:"values"`
}

// ItemUpdateRequest is the body of PATCH /api/inventories/{id}/items/{itemID}.
// Slots missing from Values are left untouched; a null value clears the slot.
type ItemUpdateRequest struct {
	Version int64      `json:"version"`
	Values  SlotValues `json:"values"`
}

// ItemList is returned by the item listing endpoint together with the
// enabled fields in display order.
type ItemList struct {
	Fields []FieldDefinition `json:"fields"`
	Items  []Item            `json:"items"`
}

// FieldStats holds aggregates for one numeric slot. Null slot values are
// excluded from every aggregate.
type FieldStats struct {
	SlotKey SlotKey  `json:"fieldKey"`
	Label   string   `json:"label"`
	Count   int64    `json:"count"`
	Avg     *float64 `json:"avg"`
	Min     *float64 `json:"min"`
	Max     *float64 `json:"max"`
}
