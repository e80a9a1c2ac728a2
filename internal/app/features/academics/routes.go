// internal/app/features/academics/routes.go
package academics

import "github.com/go-chi/chi/v5"

// MountRoutes mounts all academic material routes on the given router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Delete("/{id}", h.Delete)
}
