package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-inventory-hub/internal/access"
	"github.com/MKhiriev/go-inventory-hub/internal/imaging"
	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/internal/schema"
	"github.com/MKhiriev/go-inventory-hub/internal/service"
	"github.com/MKhiriev/go-inventory-hub/internal/store"
	"github.com/MKhiriev/go-inventory-hub/internal/utils"
)

// errorStatuses is matched in order with errors.Is; the first hit wins.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrInvalidPathParam, http.StatusBadRequest},
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidMultipart, http.StatusBadRequest},
	{errRouteNotFound, http.StatusNotFound},
	{errMethodNotAllowed, http.StatusMethodNotAllowed},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrPrincipalIsBanned, http.StatusForbidden},
	{service.ErrNoGrantsRemoved, http.StatusBadRequest},
	{service.ErrUnknownUser, http.StatusBadRequest},
	{service.ErrUpstreamUnavailable, http.StatusBadGateway},

	{access.ErrForbidden, http.StatusForbidden},
	{access.ErrOwnerGrant, http.StatusBadRequest},

	{schema.ErrInvalidSlotKey, http.StatusBadRequest},
	{schema.ErrInvalidFieldType, http.StatusBadRequest},
	{schema.ErrInvalidSlotValue, http.StatusBadRequest},
	{schema.ErrSlotValueTooLong, http.StatusBadRequest},

	{imaging.ErrUnsupportedImage, http.StatusBadRequest},
	{imaging.ErrEmptyImage, http.StatusBadRequest},
	{imaging.ErrImageTooLarge, http.StatusRequestEntityTooLarge},

	{store.ErrNotFound, http.StatusNotFound},
	{store.ErrVersionConflict, http.StatusConflict},
	{store.ErrGrantAlreadyExists, http.StatusBadRequest},
	{store.ErrInvalidReference, http.StatusBadRequest},
	{store.ErrBlobNotFound, http.StatusNotFound},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, entry := range errorStatuses {
		if errors.Is(err, entry.err) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to a status and writes the JSON error body. Server
// errors are reported with the generic status text only.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	switch {
	case status >= http.StatusInternalServerError:
		log.Err(err).Str("func", fn).Int("status", status).Msg("request failed")
	case status == http.StatusConflict || status == http.StatusForbidden:
		log.Warn().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	default:
		log.Info().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	utils.WriteError(w, message, status)
}
