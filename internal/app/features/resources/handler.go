// internal/app/features/resources/handler.go
package resources

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	uierrors "github.com/campushq/societyhub/internal/app/features/errors"
	resourcestore "github.com/campushq/societyhub/internal/app/store/resources"
	"github.com/campushq/societyhub/internal/app/system/gates"
	"github.com/campushq/societyhub/internal/app/system/htmlsanitize"
	"github.com/campushq/societyhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns all Resources handlers.
type Handler struct {
	DB     *mongo.Database
	Store  *resourcestore.Store
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

// NewHandler constructs a Resources Handler.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Store:  resourcestore.New(db),
		Log:    logger,
		ErrLog: errLog,
	}
}

// List handles GET /resources with an optional department query filter.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if res := gates.RequireAuth(w, r); !res.OK {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Store.List(ctx, r.URL.Query().Get("department"))
	if err != nil {
		h.ErrLog.LogServerError(w, r, "resources: list failed", err, "Unable to load resources.")
		return
	}
	uierrors.JSON(w, http.StatusOK, list)
}

type createRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Department  string `json:"department"`
}

// Create handles POST /resources. Senior roles only.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	res := gates.RequireSenior(w, r)
	if !res.OK {
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		uierrors.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" || req.URL == "" {
		uierrors.Error(w, http.StatusUnprocessableEntity, "title and url are required")
		return
	}
	if u, err := url.Parse(req.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		uierrors.Error(w, http.StatusUnprocessableEntity, "url must be http or https")
		return
	}
	switch req.Department {
	case "Tech", "Marketing", "Content", "Media":
	default:
		uierrors.Error(w, http.StatusUnprocessableEntity, `department must be "Tech"|"Marketing"|"Content"|"Media"`)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Store.Create(ctx, resourcestore.CreateInput{
		Title:          req.Title,
		Description:    htmlsanitize.Sanitize(req.Description),
		URL:            req.URL,
		Department:     req.Department,
		CreatedByEmail: res.Email,
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "resources: create failed", err, "Unable to create resource.")
		return
	}
	uierrors.JSON(w, http.StatusCreated, created)
}

// Delete handles DELETE /resources/{id}. Senior roles only.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if res := gates.RequireSenior(w, r); !res.OK {
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.Error(w, http.StatusUnprocessableEntity, "invalid resource id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		if errors.Is(err, resourcestore.ErrNotFound) {
			uierrors.Error(w, http.StatusNotFound, "resource not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "resources: delete failed", err, "Unable to delete resource.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
