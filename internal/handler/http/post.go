package http

import (
	"net/http"

	"github.com/MKhiriev/go-inventory-hub/internal/utils"
	"github.com/MKhiriev/go-inventory-hub/models"
)

const postIDParam = "postID"

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.DiscussionService.ListPosts(r.Context(), authzFrom(r).Inventory.ID)
	if err != nil {
		writeError(w, r, "Handler.listPosts", err)
		return
	}
	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	var req models.PostCreateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "Handler.createPost", err)
		return
	}

	post, err := h.services.DiscussionService.CreatePost(r.Context(), authzFrom(r), req)
	if err != nil {
		writeError(w, r, "Handler.createPost", err)
		return
	}
	utils.WriteJSON(w, post, http.StatusCreated)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, postIDParam)
	if err != nil {
		writeError(w, r, "Handler.deletePost", err)
		return
	}

	if err = h.services.DiscussionService.DeletePost(r.Context(), authzFrom(r), postID); err != nil {
		writeError(w, r, "Handler.deletePost", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
