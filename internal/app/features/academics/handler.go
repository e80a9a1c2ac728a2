// internal/app/features/academics/handler.go
package academics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	uierrors "github.com/campushq/societyhub/internal/app/features/errors"
	academicstore "github.com/campushq/societyhub/internal/app/store/academics"
	"github.com/campushq/societyhub/internal/app/system/gates"
	"github.com/campushq/societyhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns all Academics handlers. Any signed-in member may share
// study materials; only senior roles may remove them.
type Handler struct {
	DB     *mongo.Database
	Store  *academicstore.Store
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

// NewHandler constructs an Academics Handler.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Store:  academicstore.New(db),
		Log:    logger,
		ErrLog: errLog,
	}
}

// List handles GET /academics with an optional subject query filter.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if res := gates.RequireAuth(w, r); !res.OK {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	mats, err := h.Store.List(ctx, r.URL.Query().Get("subject"))
	if err != nil {
		h.ErrLog.LogServerError(w, r, "academics: list failed", err, "Unable to load materials.")
		return
	}
	uierrors.JSON(w, http.StatusOK, mats)
}

type createRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Subject     string `json:"subject"`
	Link        string `json:"link"`
}

// Create handles POST /academics.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	res := gates.RequireAuth(w, r)
	if !res.OK {
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		uierrors.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" || req.Link == "" {
		uierrors.Error(w, http.StatusUnprocessableEntity, "title and link are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	mat, err := h.Store.Create(ctx, academicstore.CreateInput{
		Title:          req.Title,
		Description:    req.Description,
		Subject:        req.Subject,
		Link:           req.Link,
		CreatedByEmail: res.Email,
		CreatedByName:  res.Name,
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "academics: create failed", err, "Unable to share material.")
		return
	}
	uierrors.JSON(w, http.StatusCreated, mat)
}

// Delete handles DELETE /academics/{id}. Senior roles only.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if res := gates.RequireSenior(w, r); !res.OK {
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.Error(w, http.StatusUnprocessableEntity, "invalid material id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		if errors.Is(err, academicstore.ErrNotFound) {
			uierrors.Error(w, http.StatusNotFound, "material not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "academics: delete failed", err, "Unable to delete material.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
