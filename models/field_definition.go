// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FieldDefinition gives a physical slot a label and visibility within one
// inventory. Definitions are never deleted, only disabled.
type FieldDefinition struct {
	ID           int64     `json:"id"`
	InventoryID  int64     `json:"inventoryId"`
	SlotKey      SlotKey   `json:"fieldKey"`
	FieldType    FieldType `json:"fieldType"`
	Label        string    `json:"label"`
	Description  string    `json:"description"`
	IsEnabled    bool      `json:"isEnabled"`
	DisplayOrder int       `json:"displayOrder"`
}

// FieldDefinitionPatch is one entry of a batch field update. Nil fields
// are left untouched on an existing definition.
type FieldDefinitionPatch struct {
	SlotKey      SlotKey    `json:"fieldKey"`
	FieldType    *FieldType `json:"fieldType,omitempty"`
	Label        *string    `json:"label,omitempty"`
	Description  *string    `json:"description,omitempty"`
	IsEnabled    *bool      `json:"isEnabled,omitempty"`
	DisplayOrder *int       `json:"displayOrder,omitempty"`
}

// Apply merges the patch into def and returns the result.
func (p FieldDefinitionPatch) Apply(def FieldDefinition) FieldDefinition {
	if p.Label != nil {
		def.Label = *p.Label
	}
	if p.Description != nil {
		def.Description = *p.Description
	}
	if p.IsEnabled != nil {
		def.IsEnabled = *p.IsEnabled
	}
	if p.DisplayOrder != nil {
		def.DisplayOrder = *p.DisplayOrder
	}
	return def
}
