package http

import (
	"net/http"

	"github.com/MKhiriev/go-inventory-hub/internal/utils"
)

// profile echoes the authenticated principal as seen by this server.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, principalFrom(r), http.StatusOK)
}
