// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-inventory-hub/internal/access"
	"github.com/MKhiriev/go-inventory-hub/internal/adapter"
	"github.com/MKhiriev/go-inventory-hub/internal/store"
)

// mapAdapterError translates the adapter's transport error into a domain
// error. The transport error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var domain error
	switch {
	case errors.Is(err, adapter.ErrConflict):
		domain = store.ErrVersionConflict
	case errors.Is(err, adapter.ErrForbidden):
		domain = access.ErrForbidden
	case errors.Is(err, adapter.ErrNotFound):
		domain = store.ErrNotFound
	case errors.Is(err, adapter.ErrUnauthorized):
		domain = ErrTokenIsExpiredOrInvalid
	case errors.Is(err, adapter.ErrBadRequest):
		domain = ErrInvalidDataProvided
	case errors.Is(err, adapter.ErrBadGateway):
		domain = ErrUpstreamUnavailable
	default:
		return err
	}

	return fmt.Errorf("%w: %w", domain, err)
}
