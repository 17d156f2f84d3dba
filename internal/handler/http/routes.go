package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Everything under /api except /api/version
// requires a principal token.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, "Handler.NotFound", errRouteNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, "Handler.MethodNotAllowed", errMethodNotAllowed)
	})

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		if h.blobs != nil {
			r.Get("/files/{key}", h.serveFile)
		}
	})

	if h.hub != nil {
		router.With(h.wsAuth, h.banGate).Get("/api/ws", h.collaborate)
	}

	router.Route("/api", func(r chi.Router) {
		r.Use(h.auth, h.banGate)

		r.Get("/user/profile", h.profile)
		r.Get("/search", h.searchInventories)
		r.Get("/tags", h.searchTags)
		r.Get("/categories", h.listCategories)

		r.Route("/inventories", func(r chi.Router) {
			r.Get("/", h.listInventories)
			r.Post("/", h.createInventory)

			r.Route("/{inventoryID}", func(r chi.Router) {
				r.Get("/", h.getInventory)

				r.Group(func(r chi.Router) {
					r.Use(h.authorizeInventory)

					r.Patch("/", h.updateInventory)
					r.Delete("/", h.deleteInventory)
					r.Post("/image", h.replaceInventoryImage)

					r.Get("/items", h.listItems)
					r.Get("/items/stats", h.itemStats)
					r.Post("/items", h.createItem)
					r.Patch("/items/{itemID}", h.updateItem)
					r.Delete("/items/{itemID}", h.deleteItem)

					r.Get("/fields", h.listFields)
					r.Patch("/fields", h.updateFields)

					r.Get("/access", h.listGrants)
					r.Post("/access", h.grantAccess)
					r.Delete("/access", h.revokeAccess)

					r.Get("/posts", h.listPosts)
					r.Post("/posts", h.createPost)
					r.Delete("/posts/{postID}", h.deletePost)
				})
			})
		})
	})

	return router
}
