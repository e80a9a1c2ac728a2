// internal/app/features/feedback/handler.go
package feedback

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	uierrors "github.com/campushq/societyhub/internal/app/features/errors"
	"github.com/campushq/societyhub/internal/app/scoring"
	eventstore "github.com/campushq/societyhub/internal/app/store/events"
	feedbackstore "github.com/campushq/societyhub/internal/app/store/feedback"
	"github.com/campushq/societyhub/internal/app/system/gates"
	"github.com/campushq/societyhub/internal/app/system/htmlsanitize"
	"github.com/campushq/societyhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns all Feedback handlers.
type Handler struct {
	DB      *mongo.Database
	Store   *feedbackstore.Store
	Events  *eventstore.Store
	Scoring *scoring.Engine
	Log     *zap.Logger
	ErrLog  *uierrors.ErrorLogger
}

// NewHandler constructs a Feedback Handler.
func NewHandler(db *mongo.Database, engine *scoring.Engine, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      db,
		Store:   feedbackstore.New(db),
		Events:  eventstore.New(db),
		Scoring: engine,
		Log:     logger,
		ErrLog:  errLog,
	}
}

type submitRequest struct {
	Rating   int    `json:"rating"`
	Comments string `json:"comments"`
}

// Submit handles POST /events/{id}/feedback. Feedback is append-only and
// every submission earns points; the award fires only after the insert
// succeeds, and an award failure is logged without failing the request.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	res := gates.RequireAuth(w, r)
	if !res.OK {
		return
	}

	eventID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.Error(w, http.StatusUnprocessableEntity, "invalid event id")
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		uierrors.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Events.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, eventstore.ErrNotFound) {
			uierrors.Error(w, http.StatusNotFound, "event not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "feedback: event lookup failed", err, "Unable to submit feedback.")
		return
	}

	fb, err := h.Store.Create(ctx, feedbackstore.CreateInput{
		EventID:   eventID,
		UserEmail: res.Email,
		UserName:  res.Name,
		Rating:    req.Rating,
		Comments:  htmlsanitize.Sanitize(req.Comments),
	})
	if err != nil {
		if errors.Is(err, feedbackstore.ErrBadRating) {
			uierrors.Error(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		h.ErrLog.LogServerError(w, r, "feedback: create failed", err, "Unable to submit feedback.")
		return
	}

	if err := h.Scoring.Award(ctx, fb.UserEmail, scoring.PointsFeedback, "feedback"); err != nil {
		h.Log.Error("feedback: points award failed after submit",
			zap.String("event_id", eventID.Hex()),
			zap.String("user_email", fb.UserEmail),
			zap.Error(err))
	}

	uierrors.JSON(w, http.StatusCreated, fb)
}

// ListByEvent handles GET /events/{id}/feedback. Senior roles only.
func (h *Handler) ListByEvent(w http.ResponseWriter, r *http.Request) {
	if res := gates.RequireSenior(w, r); !res.OK {
		return
	}

	eventID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.Error(w, http.StatusUnprocessableEntity, "invalid event id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	recs, err := h.Store.ListByEvent(ctx, eventID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "feedback: list failed", err, "Unable to load feedback.")
		return
	}
	uierrors.JSON(w, http.StatusOK, recs)
}

// ListMine handles GET /feedback/me: the caller's own submissions.
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	res := gates.RequireAuth(w, r)
	if !res.OK {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	recs, err := h.Store.ListByUser(ctx, res.Email)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "feedback: list mine failed", err, "Unable to load your feedback.")
		return
	}
	uierrors.JSON(w, http.StatusOK, recs)
}
