package suppliers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// MountRoutes registers supplier routes; requireUser guards mutations.
func (h *Handler) MountRoutes(r chi.Router, requireUser func(http.Handler) http.Handler) {
	r.Get("/suppliers", h.Search)
	r.Get("/suppliers/{id}", h.Get)

	r.Group(func(r chi.Router) {
		r.Use(requireUser)
		r.Post("/suppliers", h.Create)
		r.Put("/suppliers/{id}", h.Update)
		r.Delete("/suppliers/{id}", h.Delete)
	})
}
