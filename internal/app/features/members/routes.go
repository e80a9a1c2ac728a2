// internal/app/features/members/routes.go
package members

import "github.com/go-chi/chi/v5"

// MountRoutes mounts all member routes on the given router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Patch("/me", h.UpdateProfile)
}
