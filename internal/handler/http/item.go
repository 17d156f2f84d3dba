package http

import (
	"net/http"

	"github.com/MKhiriev/go-inventory-hub/internal/utils"
	"github.com/MKhiriev/go-inventory-hub/models"
)

const itemIDParam = "itemID"

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	list, err := h.services.ItemService.ListItems(r.Context(), authzFrom(r).Inventory.ID)
	if err != nil {
		writeError(w, r, "Handler.listItems", err)
		return
	}
	utils.WriteJSON(w, list, http.StatusOK)
}

func (h *Handler) itemStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.ItemService.Stats(r.Context(), authzFrom(r).Inventory.ID)
	if err != nil {
		writeError(w, r, "Handler.itemStats", err)
		return
	}
	utils.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var req models.ItemCreateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "Handler.createItem", err)
		return
	}

	item, err := h.services.ItemService.CreateItem(r.Context(), authzFrom(r), req)
	if err != nil {
		writeError(w, r, "Handler.createItem", err)
		return
	}
	utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, itemIDParam)
	if err != nil {
		writeError(w, r, "Handler.updateItem", err)
		return
	}

	var req models.ItemUpdateRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "Handler.updateItem", err)
		return
	}

	item, err := h.services.ItemService.UpdateItem(r.Context(), authzFrom(r), itemID, req)
	if err != nil {
		writeError(w, r, "Handler.updateItem", err)
		return
	}
	utils.WriteJSON(w, item, http.StatusOK)
}

// deleteItem expects the compare-and-swap version in the "version" query
// parameter.
func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, itemIDParam)
	if err != nil {
		writeError(w, r, "Handler.deleteItem", err)
		return
	}
	version, err := queryID(r, "version")
	if err != nil {
		writeError(w, r, "Handler.deleteItem", err)
		return
	}

	if err = h.services.ItemService.DeleteItem(r.Context(), authzFrom(r), itemID, version); err != nil {
		writeError(w, r, "Handler.deleteItem", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
