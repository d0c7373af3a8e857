package products

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// MountRoutes registers product routes; requireUser guards mutations.
func (h *Handler) MountRoutes(r chi.Router, requireUser func(http.Handler) http.Handler) {
	r.Get("/products", h.Search)
	r.Get("/products/{id}", h.Get)

	r.Group(func(r chi.Router) {
		r.Use(requireUser)
		r.Post("/products", h.Create)
		r.Put("/products/{id}", h.Update)
		r.Delete("/products/{id}", h.Delete)
		r.Post("/products/{id}/image", h.UploadImage)
	})
}
