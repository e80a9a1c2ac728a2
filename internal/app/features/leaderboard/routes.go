// internal/app/features/leaderboard/routes.go
package leaderboard

import (
	"github.com/campushq/societyhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// MountRoutes mounts the leaderboard routes on the given router. Both
// views have the same uniform requirement, so the group is gated by the
// session middleware rather than per-handler checks.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Use(auth.RequireSignedIn)
	r.Get("/", h.Serve)
	r.Get("/live", h.ServeLive)
}
