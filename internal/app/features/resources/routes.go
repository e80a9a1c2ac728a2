// internal/app/features/resources/routes.go
package resources

import "github.com/go-chi/chi/v5"

// MountRoutes mounts all resource routes on the given router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Delete("/{id}", h.Delete)
}
