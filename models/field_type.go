// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FieldType is the declared type family of a custom field. Every physical
// item slot belongs to exactly one family.
type FieldType string

const (
	// FieldTypeShortText is a single-line string of up to 255 characters.
	FieldTypeShortText FieldType = "sl_string"
	// FieldTypeLongText is a multi-line string of up to 1024 characters.
	FieldTypeLongText FieldType = "ml_string"
	// FieldTypeNumber is a floating point number.
	FieldTypeNumber FieldType = "number"
	// FieldTypeLink is a URL stored as text.
	FieldTypeLink FieldType = "link"
	// FieldTypeBoolean is a true/false flag.
	FieldTypeBoolean FieldType = "boolean"
)

// SlotKey names one physical item slot, e.g. "sl_string_2" or "number_1".
type SlotKey string

// SlotValues carries item slot values keyed by slot key. Values are
// string, float64, bool or nil (absent).
type SlotValues map[SlotKey]any
