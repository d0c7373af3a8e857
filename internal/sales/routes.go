package sales

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// MountRoutes registers sale routes; requireUser guards mutations.
func (h *Handler) MountRoutes(r chi.Router, requireUser func(http.Handler) http.Handler) {
	r.Get("/sales", h.Search)
	r.Get("/sales/{id}", h.Get)

	r.Group(func(r chi.Router) {
		r.Use(requireUser)
		r.Post("/sales", h.Create)
		r.Put("/sales/{id}", h.Update)
		r.Delete("/sales/{id}", h.Delete)
	})
}
