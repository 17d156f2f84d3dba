// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-inventory-hub/internal/access"
	"github.com/MKhiriev/go-inventory-hub/internal/imaging"
	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/internal/store"
	"github.com/MKhiriev/go-inventory-hub/models"
)

type inventoryService struct {
	inventories store.InventoryRepository
	blobs       store.BlobStorage
	resolver    *access.Resolver

	logger *logger.Logger
}

// NewInventoryService constructs the inventory service. Image uploads are
// normalized by the imaging package before they reach blobs.
func NewInventoryService(inventories store.InventoryRepository, blobs store.BlobStorage, resolver *access.Resolver, logger *logger.Logger) InventoryService {
	return &inventoryService{
		inventories: inventories,
		blobs:       blobs,
		resolver:    resolver,
		logger:      logger,
	}
}

func (s *inventoryService) ListInventories(ctx context.Context, principal models.Principal) ([]models.Inventory, error) {
	inventories, err := s.inventories.ListInventories(ctx, principal.ID)
	if err != nil {
		return nil, err
	}

	// the list only holds owned and granted inventories
	for i := range inventories {
		inventories[i].WriteAccess = true
	}
	return inventories, nil
}

func (s *inventoryService) GetInventory(ctx context.Context, principal models.Principal, id int64) (models.Inventory, error) {
	inv, err := s.inventories.GetInventory(ctx, id)
	if err != nil {
		return models.Inventory{}, err
	}

	inv.WriteAccess, err = s.resolver.CanWrite(ctx, principal, inv, models.AccessModePrivate)
	if err != nil {
		return models.Inventory{}, err
	}
	return inv, nil
}

func (s *inventoryService) CreateInventory(ctx context.Context, principal models.Principal, req models.InventoryCreateRequest, image *models.ImageUpload) (models.Inventory, error) {
	log := logger.FromContext(ctx)

	req.CreatorID = principal.ID
	req.Title = strings.TrimSpace(req.Title)
	req.Tags = NormalizeTags(req.Tags)

	if image != nil {
		url, err := s.storeImage(ctx, *image)
		if err != nil {
			return models.Inventory{}, err
		}
		req.ImageURL = &url
	}

	inv, err := s.inventories.CreateInventory(ctx, req)
	if err != nil {
		if req.ImageURL != nil {
			s.deleteImage(ctx, *req.ImageURL)
		}
		return models.Inventory{}, err
	}

	log.Info().Str("func", "inventoryService.CreateInventory").
		Int64("inventory_id", inv.ID).
		Str("creator_id", principal.ID).
		Msg("inventory created")

	inv.WriteAccess = true
	return inv, nil
}

func (s *inventoryService) UpdateInventory(ctx context.Context, authz models.AuthorizationContext, req models.InventoryUpdateRequest) (models.Inventory, error) {
	if err := access.Require(authz, models.AccessModePrivate); err != nil {
		return models.Inventory{}, err
	}

	patch := req.InventoryPatch
	patch.ImageURL = nil
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		patch.Title = &title
	}
	if patch.Tags != nil {
		tags := NormalizeTags(*patch.Tags)
		patch.Tags = &tags
	}

	inv, err := s.inventories.UpdateInventory(ctx, authz.Inventory.ID, req.Version, patch)
	if err != nil {
		return models.Inventory{}, err
	}

	inv.WriteAccess = authz.WriteAccess
	return inv, nil
}

// ReplaceImage keeps at most one stored image per inventory: the previous
// image is removed after a successful swap and the new one after a failed
// swap.
func (s *inventoryService) ReplaceImage(ctx context.Context, authz models.AuthorizationContext, expectedVersion int64, image models.ImageUpload) (models.Inventory, error) {
	if err := access.Require(authz, models.AccessModePrivate); err != nil {
		return models.Inventory{}, err
	}

	url, err := s.storeImage(ctx, image)
	if err != nil {
		return models.Inventory{}, err
	}

	inv, err := s.inventories.UpdateInventory(ctx, authz.Inventory.ID, expectedVersion, models.InventoryPatch{ImageURL: &url})
	if err != nil {
		s.deleteImage(ctx, url)
		return models.Inventory{}, err
	}

	if old := authz.Inventory.ImageURL; old != nil && *old != url {
		s.deleteImage(ctx, *old)
	}

	inv.WriteAccess = authz.WriteAccess
	return inv, nil
}

func (s *inventoryService) DeleteInventory(ctx context.Context, authz models.AuthorizationContext) error {
	log := logger.FromContext(ctx)

	if !authz.IsOwner() && !authz.Principal.IsAdmin() {
		return fmt.Errorf("%w: only the owner can delete inventory %d", access.ErrForbidden, authz.Inventory.ID)
	}

	if err := s.inventories.DeleteInventory(ctx, authz.Inventory.ID); err != nil {
		return err
	}

	if authz.Inventory.ImageURL != nil {
		s.deleteImage(ctx, *authz.Inventory.ImageURL)
	}

	log.Info().Str("func", "inventoryService.DeleteInventory").
		Int64("inventory_id", authz.Inventory.ID).
		Str("principal_id", authz.Principal.ID).
		Msg("inventory deleted")
	return nil
}

func (s *inventoryService) SearchInventories(ctx context.Context, query string) ([]models.Inventory, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Inventory{}, nil
	}
	return s.inventories.SearchInventories(ctx, query)
}

func (s *inventoryService) storeImage(ctx context.Context, image models.ImageUpload) (string, error) {
	normalized, err := imaging.Normalize(image)
	if err != nil {
		return "", err
	}

	url, err := s.blobs.Put(ctx, normalized.Data, normalized.ContentType)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "inventoryService.storeImage").Msg("blob upload failed")
		return "", fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	return url, nil
}

// deleteImage is best effort. A leftover blob is logged, not returned.
func (s *inventoryService) deleteImage(ctx context.Context, url string) {
	if err := s.blobs.Delete(ctx, url); err != nil && !errors.Is(err, store.ErrBlobNotFound) {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "inventoryService.deleteImage").
			Str("url", url).
			Msg("failed to delete blob")
	}
}

// NormalizeTags trims and lowercases tags, drops empties and duplicates,
// and keeps the first-seen order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || slices.Contains(out, tag) {
			continue
		}
		out = append(out, tag)
	}
	return out
}
