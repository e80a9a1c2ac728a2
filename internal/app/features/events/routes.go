// internal/app/features/events/routes.go
package events

import "github.com/go-chi/chi/v5"

// MountRoutes mounts all event routes on the given router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Delete("/{id}", h.Delete)
}
