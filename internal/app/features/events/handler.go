// internal/app/features/events/handler.go
package events

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	uierrors "github.com/campushq/societyhub/internal/app/features/errors"
	eventstore "github.com/campushq/societyhub/internal/app/store/events"
	"github.com/campushq/societyhub/internal/app/system/gates"
	"github.com/campushq/societyhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns all Events handlers.
type Handler struct {
	DB     *mongo.Database
	Store  *eventstore.Store
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

// NewHandler constructs an Events Handler.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Store:  eventstore.New(db),
		Log:    logger,
		ErrLog: errLog,
	}
}

// List handles GET /events.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if res := gates.RequireAuth(w, r); !res.OK {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	events, err := h.Store.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "events: list failed", err, "Unable to load events.")
		return
	}
	uierrors.JSON(w, http.StatusOK, events)
}

// Get handles GET /events/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	if res := gates.RequireAuth(w, r); !res.OK {
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.Error(w, http.StatusUnprocessableEntity, "invalid event id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ev, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, eventstore.ErrNotFound) {
			uierrors.Error(w, http.StatusNotFound, "event not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "events: get failed", err, "Unable to load event.")
		return
	}
	uierrors.JSON(w, http.StatusOK, ev)
}

type createRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	Venue       string    `json:"venue"`
	Priority    string    `json:"priority"`
	Type        string    `json:"type"`
}

// Create handles POST /events. Senior roles only.
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
	if req.Title == "" || req.Date.IsZero() {
		uierrors.Error(w, http.StatusUnprocessableEntity, "title and date are required")
		return
	}
	switch req.Type {
	case "Workshop", "Hackathon", "Meet", "Event":
	default:
		uierrors.Error(w, http.StatusUnprocessableEntity, `type must be "Workshop"|"Hackathon"|"Meet"|"Event"`)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ev, err := h.Store.Create(ctx, eventstore.CreateInput{
		Title:          req.Title,
		Description:    req.Description,
		Date:           req.Date,
		Time:           req.Time,
		Venue:          req.Venue,
		Priority:       req.Priority,
		Type:           req.Type,
		CreatedByEmail: res.Email,
		CreatedByName:  res.Name,
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "events: create failed", err, "Unable to create event.")
		return
	}
	uierrors.JSON(w, http.StatusCreated, ev)
}

// Delete handles DELETE /events/{id}. Senior roles only. Attendance and
// feedback for the event are kept; they still count toward analytics.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if res := gates.RequireSenior(w, r); !res.OK {
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.Error(w, http.StatusUnprocessableEntity, "invalid event id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		if errors.Is(err, eventstore.ErrNotFound) {
			uierrors.Error(w, http.StatusNotFound, "event not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "events: delete failed", err, "Unable to delete event.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
