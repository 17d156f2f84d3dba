package http

import (
	"net/http"

	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/internal/utils"
)

const inventoryIDParam = "inventoryID"

// authorizeInventory resolves the authorization context for the inventory
// named in the path once per request and stores it for the route handler.
func (h *Handler) authorizeInventory(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inventoryID, err := pathID(r, inventoryIDParam)
		if err != nil {
			writeError(w, r, "Handler.authorizeInventory", err)
			return
		}

		ctx := logger.WithInventoryID(r.Context(), inventoryID)
		principal, _ := utils.GetPrincipalFromContext(ctx)
		authz, err := h.services.AccessService.Authorize(ctx, principal, inventoryID)
		if err != nil {
			writeError(w, r, "Handler.authorizeInventory", err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithAuthorization(ctx, authz)))
	})
}
