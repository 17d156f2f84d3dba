package http

import (
	"net/http"

	"github.com/MKhiriev/go-inventory-hub/internal/utils"
	"github.com/MKhiriev/go-inventory-hub/models"
)

func (h *Handler) listGrants(w http.ResponseWriter, r *http.Request) {
	grantees, err := h.services.AccessService.ListGrants(r.Context(), authzFrom(r))
	if err != nil {
		writeError(w, r, "Handler.listGrants", err)
		return
	}
	utils.WriteJSON(w, grantees, http.StatusOK)
}

func (h *Handler) grantAccess(w http.ResponseWriter, r *http.Request) {
	var req models.GrantRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "Handler.grantAccess", err)
		return
	}

	grant, err := h.services.AccessService.Grant(r.Context(), authzFrom(r), req)
	if err != nil {
		writeError(w, r, "Handler.grantAccess", err)
		return
	}
	utils.WriteJSON(w, grant, http.StatusCreated)
}

func (h *Handler) revokeAccess(w http.ResponseWriter, r *http.Request) {
	var req models.RevokeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "Handler.revokeAccess", err)
		return
	}

	if err := h.services.AccessService.Revoke(r.Context(), authzFrom(r), req); err != nil {
		writeError(w, r, "Handler.revokeAccess", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
