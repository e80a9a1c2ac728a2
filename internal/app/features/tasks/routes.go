// internal/app/features/tasks/routes.go
package tasks

import "github.com/go-chi/chi/v5"

// MountRoutes mounts all task routes on the given router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/me", h.ListMine)
	r.Put("/{id}", h.Update)
	r.Post("/{id}/complete", h.Complete)
	r.Patch("/{id}/status", h.UpdateStatus)
	r.Delete("/{id}", h.Delete)
}
