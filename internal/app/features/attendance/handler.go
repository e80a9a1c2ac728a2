// internal/app/features/attendance/handler.go
package attendance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	uierrors "github.com/campushq/societyhub/internal/app/features/errors"
	"github.com/campushq/societyhub/internal/app/scoring"
	attendancestore "github.com/campushq/societyhub/internal/app/store/attendance"
	eventstore "github.com/campushq/societyhub/internal/app/store/events"
	"github.com/campushq/societyhub/internal/app/system/gates"
	"github.com/campushq/societyhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns all Attendance handlers.
type Handler struct {
	DB      *mongo.Database
	Store   *attendancestore.Store
	Events  *eventstore.Store
	Scoring *scoring.Engine
	Log     *zap.Logger
	ErrLog  *uierrors.ErrorLogger
}

// NewHandler constructs an Attendance Handler.
func NewHandler(db *mongo.Database, engine *scoring.Engine, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      db,
		Store:   attendancestore.New(db),
		Events:  eventstore.New(db),
		Scoring: engine,
		Log:     logger,
		ErrLog:  errLog,
	}
}

type markRequest struct {
	UserEmail string `json:"user_email"`
	UserName  string `json:"user_name"`
	Status    string `json:"status"`
}

// Mark handles POST /events/{id}/attendance. Senior roles only. Points
// are awarded exactly once per (event, member): only when the stored
// status first becomes Present. Re-marking Present, or flipping back to
// Absent, never pays again and never claws back. An award failure after
// the mark is logged; the mark itself stands.
func (h *Handler) Mark(w http.ResponseWriter, r *http.Request) {
	res := gates.RequireSenior(w, r)
	if !res.OK {
		return
	}

	eventID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.Error(w, http.StatusUnprocessableEntity, "invalid event id")
		return
	}

	var req markRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		uierrors.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserEmail == "" {
		uierrors.Error(w, http.StatusUnprocessableEntity, "user_email is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Events.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, eventstore.ErrNotFound) {
			uierrors.Error(w, http.StatusNotFound, "event not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "attendance: event lookup failed", err, "Unable to mark attendance.")
		return
	}

	rec, newlyPresent, err := h.Store.Mark(ctx, attendancestore.MarkInput{
		EventID:       eventID,
		UserEmail:     req.UserEmail,
		UserName:      req.UserName,
		Status:        req.Status,
		MarkedByEmail: res.Email,
		MarkedByName:  res.Name,
	})
	if err != nil {
		if errors.Is(err, attendancestore.ErrBadStatus) {
			uierrors.Error(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		h.ErrLog.LogServerError(w, r, "attendance: mark failed", err, "Unable to mark attendance.")
		return
	}

	if newlyPresent {
		if err := h.Scoring.Award(ctx, rec.UserEmail, scoring.PointsAttendance, "attendance"); err != nil {
			h.Log.Error("attendance: points award failed after mark",
				zap.String("event_id", eventID.Hex()),
				zap.String("user_email", rec.UserEmail),
				zap.Error(err))
		}
	}

	uierrors.JSON(w, http.StatusOK, rec)
}

// ListByEvent handles GET /events/{id}/attendance. Senior roles only.
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
		h.ErrLog.LogServerError(w, r, "attendance: list failed", err, "Unable to load attendance.")
		return
	}
	uierrors.JSON(w, http.StatusOK, recs)
}

// ListMine handles GET /attendance/me: the caller's own record history.
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	res := gates.RequireAuth(w, r)
	if !res.OK {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	recs, err := h.Store.ListByUser(ctx, res.Email)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "attendance: list mine failed", err, "Unable to load your attendance.")
		return
	}
	uierrors.JSON(w, http.StatusOK, recs)
}
