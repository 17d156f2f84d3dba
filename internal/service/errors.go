package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-inventory-hub/internal/access"
)

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrPrincipalIsBanned       = errors.New("principal is banned")

	// ErrNoGrantsRemoved is returned when none of the revoked principals
	// held a grant.
	ErrNoGrantsRemoved = errors.New("none of the users had write access")

	// ErrUnknownUser is returned when the identity directory does not know
	// the grant target.
	ErrUnknownUser = errors.New("user does not exist")

	// ErrUpstreamUnavailable is returned when an external collaborator
	// (identity directory, blob storage) fails. Callers do not retry.
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")

	// ErrNotPostAuthor is returned when a non-admin deletes someone else's
	// post.
	ErrNotPostAuthor = fmt.Errorf("%w: only the author can delete a post", access.ErrForbidden)
)

// Client-side reconciliation errors.
var (
	// ErrStaleVersion is returned while the reconciler holds a version the
	// server already rejected. Reload clears it.
	ErrStaleVersion = errors.New("local version is stale, reload required")

	// ErrReconcilerNotStarted is returned by operations that need the
	// authoritative inventory loaded by Start.
	ErrReconcilerNotStarted = errors.New("reconciler is not started")
)
