// internal/app/features/feedback/routes.go
package feedback

import "github.com/go-chi/chi/v5"

// MountEventRoutes mounts the per-event feedback routes; the router is
// expected to carry an {id} event parameter.
func (h *Handler) MountEventRoutes(r chi.Router) {
	r.Post("/{id}/feedback", h.Submit)
	r.Get("/{id}/feedback", h.ListByEvent)
}

// MountRoutes mounts the member-facing feedback routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/me", h.ListMine)
}
