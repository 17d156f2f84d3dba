package http

import (
	"net/http"

	"github.com/MKhiriev/go-inventory-hub/internal/collab"
	"github.com/MKhiriev/go-inventory-hub/internal/logger"
)

// collaborate upgrades the request to the collaboration channel. The
// session lasts until the peer disconnects or the server shuts down.
func (h *Handler) collaborate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	principal := principalFrom(r)

	log.Info().Str("principal_id", principal.ID).Msg("collaboration session opened")
	if err := collab.Serve(r.Context(), h.hub, h.session, w, r, principal); err != nil {
		// the upgrader has already replied to the client
		log.Warn().Err(err).Str("func", "Handler.collaborate").Msg("websocket upgrade failed")
		return
	}
	log.Info().Str("principal_id", principal.ID).Msg("collaboration session closed")
}
