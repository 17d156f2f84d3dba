package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-inventory-hub/internal/access"
	"github.com/MKhiriev/go-inventory-hub/internal/adapter"
	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/internal/store"
	"github.com/MKhiriev/go-inventory-hub/models"
)

type accessService struct {
	inventories store.InventoryRepository
	grants      store.GrantRepository
	resolver    *access.Resolver
	// directory is optional; nil skips target lookups.
	directory adapter.IdentityDirectory

	logger *logger.Logger
}

func NewAccessService(inventories store.InventoryRepository, grants store.GrantRepository, resolver *access.Resolver, directory adapter.IdentityDirectory, logger *logger.Logger) AccessService {
	return &accessService{
		inventories: inventories,
		grants:      grants,
		resolver:    resolver,
		directory:   directory,
		logger:      logger,
	}
}

func (s *accessService) Authorize(ctx context.Context, principal models.Principal, inventoryID int64) (models.AuthorizationContext, error) {
	inv, err := s.inventories.GetInventory(ctx, inventoryID)
	if err != nil {
		return models.AuthorizationContext{}, err
	}
	return s.resolver.Authorize(ctx, principal, inv)
}

func (s *accessService) ListGrants(ctx context.Context, authz models.AuthorizationContext) ([]models.Grantee, error) {
	log := logger.FromContext(ctx)

	if err := access.Require(authz, models.AccessModePrivate); err != nil {
		return nil, err
	}

	grants, err := s.grants.ListGrants(ctx, authz.Inventory.ID)
	if err != nil {
		return nil, err
	}

	grantees := make([]models.Grantee, 0, len(grants))
	for _, g := range grants {
		grantee := models.Grantee{ID: g.UserID}
		if s.directory != nil {
			found, err := s.directory.LookupUser(ctx, g.UserID)
			if err == nil {
				grantee = found
			} else {
				log.Warn().Err(err).Str("func", "accessService.ListGrants").
					Str("user_id", g.UserID).
					Msg("grantee lookup failed, returning bare id")
			}
		}
		grantees = append(grantees, grantee)
	}
	return grantees, nil
}

func (s *accessService) Grant(ctx context.Context, authz models.AuthorizationContext, req models.GrantRequest) (models.AccessGrant, error) {
	log := logger.FromContext(ctx)

	if err := access.Require(authz, models.AccessModePrivate); err != nil {
		return models.AccessGrant{}, err
	}
	if err := access.CheckGrantTargets(authz.Inventory, req.TargetUserID); err != nil {
		return models.AccessGrant{}, err
	}

	if s.directory != nil {
		if _, err := s.directory.LookupUser(ctx, req.TargetUserID); err != nil {
			if errors.Is(err, adapter.ErrNotFound) {
				return models.AccessGrant{}, fmt.Errorf("%w: %s", ErrUnknownUser, req.TargetUserID)
			}
			log.Err(err).Str("func", "accessService.Grant").Msg("identity directory lookup failed")
			return models.AccessGrant{}, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
		}
	}

	grant, err := s.grants.CreateGrant(ctx, authz.Inventory.ID, req.TargetUserID)
	if err != nil {
		return models.AccessGrant{}, err
	}

	log.Info().Str("func", "accessService.Grant").
		Int64("inventory_id", authz.Inventory.ID).
		Str("target_id", req.TargetUserID).
		Msg("write access granted")
	return grant, nil
}

func (s *accessService) Revoke(ctx context.Context, authz models.AuthorizationContext, req models.RevokeRequest) error {
	log := logger.FromContext(ctx)

	if err := access.Require(authz, models.AccessModePrivate); err != nil {
		return err
	}
	if err := access.CheckGrantTargets(authz.Inventory, req.UserIDs...); err != nil {
		return err
	}

	removed, err := s.grants.DeleteGrants(ctx, authz.Inventory.ID, req.UserIDs)
	if err != nil {
		return err
	}
	if removed == 0 {
		return ErrNoGrantsRemoved
	}

	log.Info().Str("func", "accessService.Revoke").
		Int64("inventory_id", authz.Inventory.ID).
		Int64("removed", removed).
		Msg("write access revoked")
	return nil
}
