package http

import (
	"mime"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

// serveFile streams a stored blob. Range and conditional requests are
// handled by [http.ServeContent].
func (h *Handler) serveFile(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" || strings.Contains(key, "/") || strings.Contains(key, "..") {
		writeError(w, r, "Handler.serveFile", ErrInvalidPathParam)
		return
	}

	file, err := h.blobs.Open(key)
	if err != nil {
		writeError(w, r, "Handler.serveFile", err)
		return
	}
	defer file.Close()

	if contentType := mime.TypeByExtension(path.Ext(key)); contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.Header().Set("Cache-Control", "public, max-age=86400, immutable")
	http.ServeContent(w, r, key, time.Time{}, file)
}
