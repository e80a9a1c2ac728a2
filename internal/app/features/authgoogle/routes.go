// internal/app/features/authgoogle/routes.go
package authgoogle

import "github.com/go-chi/chi/v5"

// MountRoutes mounts the Google OAuth routes on the given router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/google", h.ServeLogin)
	r.Get("/google/callback", h.ServeCallback)
}
