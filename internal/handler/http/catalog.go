package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-inventory-hub/internal/utils"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.services.CatalogService.ListCategories(r.Context())
	if err != nil {
		writeError(w, r, "Handler.listCategories", err)
		return
	}
	utils.WriteJSON(w, categories, http.StatusOK)
}

func (h *Handler) searchTags(w http.ResponseWriter, r *http.Request) {
	prefix := strings.TrimSpace(r.URL.Query().Get("search"))

	tags, err := h.services.CatalogService.SearchTags(r.Context(), prefix)
	if err != nil {
		writeError(w, r, "Handler.searchTags", err)
		return
	}
	utils.WriteJSON(w, tags, http.StatusOK)
}
