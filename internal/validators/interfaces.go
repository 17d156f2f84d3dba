// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of inventory API requests (titles,
// tags, versions, post content, grant targets, field definition batches)
// before they reach authorization and storage. Schema rules for item slot
// values live in the schema package; validators only call into it.
package validators

import "context"

// Validator validates obj. Passing field names restricts the checks to
// those fields; none means all of them.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
