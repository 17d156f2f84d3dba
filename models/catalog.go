// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Category is a fixed inventory category.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Tag is a global, case-insensitively unique inventory tag.
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
