// internal/app/features/analytics/routes.go
package analytics

import (
	"github.com/campushq/societyhub/internal/app/system/auth"
	"github.com/campushq/societyhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// MountRoutes mounts the analytics routes on the given router. The
// all-members views are a uniform EB/EC group, so the role middleware
// gates them before the handlers run a single fetch; the personal view
// keeps its in-handler gate because it needs the caller's identity.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/me", h.ServeMine)
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(models.RoleEB, models.RoleEC))
		r.Get("/users", h.ServeAll)
		r.Get("/users/export", h.ServeExport)
	})
}
