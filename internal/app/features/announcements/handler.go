// internal/app/features/announcements/handler.go
package announcements

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	uierrors "github.com/campushq/societyhub/internal/app/features/errors"
	announcementstore "github.com/campushq/societyhub/internal/app/store/announcements"
	"github.com/campushq/societyhub/internal/app/system/gates"
	"github.com/campushq/societyhub/internal/app/system/htmlsanitize"
	"github.com/campushq/societyhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns all Announcements handlers.
type Handler struct {
	DB     *mongo.Database
	Store  *announcementstore.Store
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

// NewHandler constructs an Announcements Handler.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Store:  announcementstore.New(db),
		Log:    logger,
		ErrLog: errLog,
	}
}

// List handles GET /announcements. Any signed-in member may read.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if res := gates.RequireAuth(w, r); !res.OK {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	anns, err := h.Store.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "announcements: list failed", err, "Unable to load announcements.")
		return
	}
	uierrors.JSON(w, http.StatusOK, anns)
}

type createRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Priority  string `json:"priority"`
	EventDate string `json:"event_date"`
	EventTime string `json:"event_time"`
	Venue     string `json:"venue"`
}

// Create handles POST /announcements. Senior roles only. Title and
// content are sanitized before storage.
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
	if req.Title == "" || req.Content == "" {
		uierrors.Error(w, http.StatusUnprocessableEntity, "title and content are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ann, err := h.Store.Create(ctx, announcementstore.CreateInput{
		Title:          htmlsanitize.Sanitize(req.Title),
		Content:        htmlsanitize.Sanitize(req.Content),
		Priority:       req.Priority,
		EventDate:      req.EventDate,
		EventTime:      req.EventTime,
		Venue:          req.Venue,
		CreatedByEmail: res.Email,
		CreatedByName:  res.Name,
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "announcements: create failed", err, "Unable to create announcement.")
		return
	}
	uierrors.JSON(w, http.StatusCreated, ann)
}

// Update handles PUT /announcements/{id}. Senior roles only. The same
// validation and sanitization as Create applies.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	res := gates.RequireSenior(w, r)
	if !res.OK {
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.Error(w, http.StatusUnprocessableEntity, "invalid announcement id")
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		uierrors.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" || req.Content == "" {
		uierrors.Error(w, http.StatusUnprocessableEntity, "title and content are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ann, err := h.Store.Update(ctx, id, announcementstore.CreateInput{
		Title:     htmlsanitize.Sanitize(req.Title),
		Content:   htmlsanitize.Sanitize(req.Content),
		Priority:  req.Priority,
		EventDate: req.EventDate,
		EventTime: req.EventTime,
		Venue:     req.Venue,
	})
	if err != nil {
		if errors.Is(err, announcementstore.ErrNotFound) {
			uierrors.Error(w, http.StatusNotFound, "announcement not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "announcements: update failed", err, "Unable to update announcement.")
		return
	}
	uierrors.JSON(w, http.StatusOK, ann)
}

// Delete handles DELETE /announcements/{id}. Senior roles only.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if res := gates.RequireSenior(w, r); !res.OK {
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.Error(w, http.StatusUnprocessableEntity, "invalid announcement id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		if errors.Is(err, announcementstore.ErrNotFound) {
			uierrors.Error(w, http.StatusNotFound, "announcement not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "announcements: delete failed", err, "Unable to delete announcement.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
