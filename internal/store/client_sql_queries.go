// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	saveDraft = `
		INSERT INTO inventory_drafts (
			inventory_id,
			base_version,
			patch,
			updated_at
		) VALUES ($1, $2, $3, $4)
		ON CONFLICT (inventory_id) DO UPDATE SET
			base_version = excluded.base_version,
			patch        = excluded.patch,
			updated_at   = excluded.updated_at;`

	loadDraft = `
		SELECT
			inventory_id,
			base_version,
			patch,
			updated_at
		FROM inventory_drafts
		WHERE inventory_id = $1;`

	deleteDraft = `
		DELETE FROM inventory_drafts
		WHERE inventory_id = $1;`
)
