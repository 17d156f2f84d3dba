package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-inventory-hub/internal/imaging"
	"github.com/MKhiriev/go-inventory-hub/internal/utils"
	"github.com/MKhiriev/go-inventory-hub/models"
)

const (
	multipartDataField    = "data"
	multipartImageField   = "image"
	multipartVersionField = "version"
)

func (h *Handler) listInventories(w http.ResponseWriter, r *http.Request) {
	inventories, err := h.services.InventoryService.ListInventories(r.Context(), principalFrom(r))
	if err != nil {
		writeError(w, r, "Handler.listInventories", err)
		return
	}
	utils.WriteJSON(w, inventories, http.StatusOK)
}

func (h *Handler) getInventory(w http.ResponseWriter, r *http.Request) {
	inventoryID, err := pathID(r, inventoryIDParam)
	if err != nil {
		writeError(w, r, "Handler.getInventory", err)
		return
	}

	inventory, err := h.services.InventoryService.GetInventory(r.Context(), principalFrom(r), inventoryID)
	if err != nil {
		writeError(w, r, "Handler.getInventory", err)
		return
	}
	utils.WriteJSON(w, inventory, http.StatusOK)
}

// createInventory accepts either a JSON body or a multipart form with the
// settings in the "data" part and an optional "image" file.
func (h *Handler) createInventory(w http.ResponseWriter, r *http.Request) {
	var (
		req   models.InventoryCreateRequest
		image *models.ImageUpload
	)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := parseUploadForm(w, r); err != nil {
			writeError(w, r, "Handler.createInventory", err)
			return
		}
		if err := json.Unmarshal([]byte(r.FormValue(multipartDataField)), &req); err != nil {
			writeError(w, r, "Handler.createInventory", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
			return
		}
		upload, err := readImagePart(r, false)
		if err != nil {
			writeError(w, r, "Handler.createInventory", err)
			return
		}
		image = upload
	} else if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "Handler.createInventory", err)
		return
	}

	inventory, err := h.services.InventoryService.CreateInventory(r.Context(), principalFrom(r), req, image)
	if err != nil {
		writeError(w, r, "Handler.createInventory", err)
		return
	}
	utils.WriteJSON(w, inventory, http.StatusCreated)
}

func (h *Handler) updateInventory(w http.ResponseWriter, r *http.Request) {
	var req models.InventoryUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "Handler.updateInventory", err)
		return
	}

	inventory, err := h.services.InventoryService.UpdateInventory(r.Context(), authzFrom(r), req)
	if err != nil {
		writeError(w, r, "Handler.updateInventory", err)
		return
	}
	utils.WriteJSON(w, inventory, http.StatusOK)
}

func (h *Handler) replaceInventoryImage(w http.ResponseWriter, r *http.Request) {
	if err := parseUploadForm(w, r); err != nil {
		writeError(w, r, "Handler.replaceInventoryImage", err)
		return
	}

	version, err := strconv.ParseInt(r.FormValue(multipartVersionField), 10, 64)
	if err != nil || version <= 0 {
		writeError(w, r, "Handler.replaceInventoryImage", fmt.Errorf("%w: version", ErrInvalidMultipart))
		return
	}

	image, err := readImagePart(r, true)
	if err != nil {
		writeError(w, r, "Handler.replaceInventoryImage", err)
		return
	}

	inventory, err := h.services.InventoryService.ReplaceImage(r.Context(), authzFrom(r), version, *image)
	if err != nil {
		writeError(w, r, "Handler.replaceInventoryImage", err)
		return
	}
	utils.WriteJSON(w, inventory, http.StatusOK)
}

func (h *Handler) deleteInventory(w http.ResponseWriter, r *http.Request) {
	if err := h.services.InventoryService.DeleteInventory(r.Context(), authzFrom(r)); err != nil {
		writeError(w, r, "Handler.deleteInventory", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) searchInventories(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	inventories, err := h.services.InventoryService.SearchInventories(r.Context(), query)
	if err != nil {
		writeError(w, r, "Handler.searchInventories", err)
		return
	}
	utils.WriteJSON(w, inventories, http.StatusOK)
}

func parseUploadForm(w http.ResponseWriter, r *http.Request) error {
	// multipart overhead on top of the image itself
	r.Body = http.MaxBytesReader(w, r.Body, imaging.MaxUploadSize+maxJSONBody)
	if err := r.ParseMultipartForm(imaging.MaxUploadSize); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMultipart, err)
	}
	return nil
}

// readImagePart returns nil when the image part is absent and not required.
func readImagePart(r *http.Request, required bool) (*models.ImageUpload, error) {
	file, header, err := r.FormFile(multipartImageField)
	if err != nil {
		if !required && errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: image", ErrInvalidMultipart)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, imaging.MaxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMultipart, err)
	}
	if len(data) > imaging.MaxUploadSize {
		return nil, imaging.ErrImageTooLarge
	}

	return &models.ImageUpload{
		Data:        data,
		ContentType: header.Header.Get("Content-Type"),
	}, nil
}
