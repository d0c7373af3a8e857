package customers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// MountRoutes registers customer routes; requireUser guards mutations.
func (h *Handler) MountRoutes(r chi.Router, requireUser func(http.Handler) http.Handler) {
	r.Get("/customers", h.Search)
	r.Get("/customers/{id}", h.Get)
	r.Post("/customers", h.Create)

	r.Group(func(r chi.Router) {
		r.Use(requireUser)
		r.Put("/customers/{id}", h.Update)
		r.Delete("/customers/{id}", h.Delete)
	})
}
