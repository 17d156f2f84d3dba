// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RoleAdmin is the identity provider role that overrides write checks.
const RoleAdmin = "admin"

// Principal is the authenticated caller as reported by the identity
// provider.
type Principal struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	Banned   bool   `json:"banned"`
	Email    string `json:"email,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// IsAdmin reports whether the principal carries the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// AccessMode selects which decision steps apply when resolving write
// access.
type AccessMode int

const (
	// AccessModePrivate is used for inventory settings, fields and grants.
	// The public flag never grants write access in this mode.
	AccessModePrivate AccessMode = iota
	// AccessModePublicEligible is used for items and discussion posts.
	AccessModePublicEligible
)

// String returns the mode name used in logs.
func (m AccessMode) String() string {
	if m == AccessModePublicEligible {
		return "public-eligible"
	}
	return "private"
}

// AuthorizationContext is computed once per request for inventory scoped
// routes and threaded through handlers and services.
type AuthorizationContext struct {
	Principal Principal
	Inventory Inventory

	// WriteAccess is the resolved decision in private mode.
	WriteAccess bool
	// PublicWriteAccess is the resolved decision in public-eligible mode.
	PublicWriteAccess bool
}

// CanWrite returns the resolved write decision for mode.
func (a AuthorizationContext) CanWrite(mode AccessMode) bool {
	if mode == AccessModePublicEligible {
		return a.PublicWriteAccess
	}
	return a.WriteAccess
}

// IsOwner reports whether the principal owns the inventory.
func (a AuthorizationContext) IsOwner() bool {
	return a.Principal.ID != "" && a.Principal.ID == a.Inventory.CreatorID
}
