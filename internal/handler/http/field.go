package http

import (
	"net/http"

	"github.com/MKhiriev/go-inventory-hub/internal/utils"
	"github.com/MKhiriev/go-inventory-hub/models"
)

// listFields returns every slot definition. With ?enabled=true only the
// enabled ones are returned.
func (h *Handler) listFields(w http.ResponseWriter, r *http.Request) {
	enabledOnly := r.URL.Query().Get("enabled") == "true"

	fields, err := h.services.FieldService.ListFields(r.Context(), authzFrom(r).Inventory.ID, enabledOnly)
	if err != nil {
		writeError(w, r, "Handler.listFields", err)
		return
	}
	utils.WriteJSON(w, fields, http.StatusOK)
}

func (h *Handler) updateFields(w http.ResponseWriter, r *http.Request) {
	var patches []models.FieldDefinitionPatch
	if err := decodeJSON(w, r, &patches); err != nil {
		writeError(w, r, "Handler.updateFields", err)
		return
	}

	fields, err := h.services.FieldService.UpdateFields(r.Context(), authzFrom(r), patches)
	if err != nil {
		writeError(w, r, "Handler.updateFields", err)
		return
	}
	utils.WriteJSON(w, fields, http.StatusOK)
}
