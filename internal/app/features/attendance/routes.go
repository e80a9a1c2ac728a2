// internal/app/features/attendance/routes.go
package attendance

import "github.com/go-chi/chi/v5"

// MountEventRoutes mounts the per-event attendance routes; the router is
// expected to carry an {id} event parameter.
func (h *Handler) MountEventRoutes(r chi.Router) {
	r.Post("/{id}/attendance", h.Mark)
	r.Get("/{id}/attendance", h.ListByEvent)
}

// MountRoutes mounts the member-facing attendance routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/me", h.ListMine)
}
