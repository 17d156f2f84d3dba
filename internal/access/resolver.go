// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package access decides whether a principal may mutate an inventory or
// the items and posts it owns.
package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/models"
)

var (
	// ErrForbidden is returned when the resolver denies write access.
	ErrForbidden = errors.New("write access denied")

	// ErrOwnerGrant is returned when a grant or revoke names the inventory owner.
	ErrOwnerGrant = errors.New("inventory owner cannot be granted or revoked")
)

// Decision names the rule that produced a resolver verdict.
type Decision int

const (
	DecisionDenied Decision = iota
	DecisionOwner
	DecisionAdmin
	DecisionGrant
	DecisionPublic
)

func (d Decision) String() string {
	switch d {
	case DecisionOwner:
		return "owner"
	case DecisionAdmin:
		return "admin"
	case DecisionGrant:
		return "grant"
	case DecisionPublic:
		return "public"
	}
	return "denied"
}

// Allowed reports whether the decision grants write access.
func (d Decision) Allowed() bool {
	return d != DecisionDenied
}

// GrantChecker looks up explicit access grants.
type GrantChecker interface {
	HasGrant(ctx context.Context, inventoryID int64, userID string) (bool, error)
}

// Resolver evaluates write access in a fixed order where the first
// matching rule wins: owner, admin role, explicit grant, public flag
// (public-eligible mode only), deny.
//
// Ban status is not consulted; banned principals are stopped before the
// resolver runs.
type Resolver struct {
	grants GrantChecker
	logger *logger.Logger
}

// NewResolver returns a Resolver backed by grants.
func NewResolver(grants GrantChecker, log *logger.Logger) *Resolver {
	return &Resolver{grants: grants, logger: log}
}

// Resolve returns the decision for principal on inv in the given mode.
// The grant lookup is skipped when an earlier rule already matched.
func (r *Resolver) Resolve(ctx context.Context, principal models.Principal, inv models.Inventory, mode models.AccessMode) (Decision, error) {
	if principal.ID == "" {
		return DecisionDenied, nil
	}
	if principal.ID == inv.CreatorID {
		return DecisionOwner, nil
	}
	if principal.IsAdmin() {
		return DecisionAdmin, nil
	}

	granted, err := r.grants.HasGrant(ctx, inv.ID, principal.ID)
	if err != nil {
		return DecisionDenied, fmt.Errorf("check grant: %w", err)
	}
	if granted {
		return DecisionGrant, nil
	}

	if mode == models.AccessModePublicEligible && inv.IsPublic {
		return DecisionPublic, nil
	}
	return DecisionDenied, nil
}

// CanWrite is Resolve reduced to a boolean.
func (r *Resolver) CanWrite(ctx context.Context, principal models.Principal, inv models.Inventory, mode models.AccessMode) (bool, error) {
	d, err := r.Resolve(ctx, principal, inv, mode)
	if err != nil {
		return false, err
	}
	return d.Allowed(), nil
}

// Authorize resolves both modes at once and returns the per-request
// authorization context. At most one grant lookup is performed.
func (r *Resolver) Authorize(ctx context.Context, principal models.Principal, inv models.Inventory) (models.AuthorizationContext, error) {
	log := logger.FromContext(ctx)

	private, err := r.Resolve(ctx, principal, inv, models.AccessModePrivate)
	if err != nil {
		log.Err(err).Str("func", "Resolver.Authorize").
			Int64("inventory_id", inv.ID).
			Str("principal_id", principal.ID).
			Msg("access resolution failed")
		return models.AuthorizationContext{}, err
	}

	public := private.Allowed() || (principal.ID != "" && inv.IsPublic)

	authz := models.AuthorizationContext{
		Principal:         principal,
		Inventory:         inv,
		WriteAccess:       private.Allowed(),
		PublicWriteAccess: public,
	}
	authz.Inventory.WriteAccess = authz.WriteAccess

	log.Debug().Str("func", "Resolver.Authorize").
		Int64("inventory_id", inv.ID).
		Str("principal_id", principal.ID).
		Stringer("decision", private).
		Bool("public_write", public).
		Msg("access resolved")

	return authz, nil
}

// Require returns ErrForbidden unless authz permits writes in mode.
func Require(authz models.AuthorizationContext, mode models.AccessMode) error {
	if !authz.CanWrite(mode) {
		return fmt.Errorf("%w: %s mode on inventory %d", ErrForbidden, mode, authz.Inventory.ID)
	}
	return nil
}

// CheckGrantTargets rejects grant mutations that name the inventory owner,
// whatever the caller's role.
func CheckGrantTargets(inv models.Inventory, userIDs ...string) error {
	for _, id := range userIDs {
		if id == inv.CreatorID {
			return ErrOwnerGrant
		}
	}
	return nil
}
