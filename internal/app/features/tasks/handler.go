// internal/app/features/tasks/handler.go
package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	uierrors "github.com/campushq/societyhub/internal/app/features/errors"
	"github.com/campushq/societyhub/internal/app/scoring"
	taskstore "github.com/campushq/societyhub/internal/app/store/tasks"
	"github.com/campushq/societyhub/internal/app/system/gates"
	"github.com/campushq/societyhub/internal/app/system/normalize"
	"github.com/campushq/societyhub/internal/app/system/timeouts"
	"github.com/campushq/societyhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns all Tasks handlers.
type Handler struct {
	DB      *mongo.Database
	Store   *taskstore.Store
	Scoring *scoring.Engine
	Log     *zap.Logger
	ErrLog  *uierrors.ErrorLogger
}

// NewHandler constructs a Tasks Handler.
func NewHandler(db *mongo.Database, engine *scoring.Engine, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      db,
		Store:   taskstore.New(db),
		Scoring: engine,
		Log:     logger,
		ErrLog:  errLog,
	}
}

// List handles GET /tasks with optional domain/priority/status/assignee
// query filters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if res := gates.RequireAuth(w, r); !res.OK {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	q := r.URL.Query()
	tasks, err := h.Store.List(ctx, taskstore.Filter{
		Domain:   normalize.QueryParam(q.Get("domain")),
		Priority: normalize.QueryParam(q.Get("priority")),
		Status:   normalize.QueryParam(q.Get("status")),
		Assignee: q.Get("assignee"),
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "tasks: list failed", err, "Unable to load tasks.")
		return
	}
	uierrors.JSON(w, http.StatusOK, tasks)
}

// ListMine handles GET /tasks/me: the caller's own tasks.
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	res := gates.RequireAuth(w, r)
	if !res.OK {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	tasks, err := h.Store.ListByAssignee(ctx, res.Email)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "tasks: list mine failed", err, "Unable to load your tasks.")
		return
	}
	uierrors.JSON(w, http.StatusOK, tasks)
}

type createRequest struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	EventID         string    `json:"event_id"`
	Domain          string    `json:"domain"`
	Priority        string    `json:"priority"`
	Status          string    `json:"status"`
	AssignedToEmail string    `json:"assigned_to_email"`
	AssignedToName  string    `json:"assigned_to_name"`
	DueDate         time.Time `json:"due_date"`
}

// Create handles POST /tasks. Senior roles only.
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
	if req.Title == "" {
		uierrors.Error(w, http.StatusUnprocessableEntity, "title is required")
		return
	}
	if req.Status != "" && !models.IsValidTaskStatus(req.Status) {
		uierrors.Error(w, http.StatusUnprocessableEntity, `status must be "Upcoming"|"Today"|"Completed"`)
		return
	}

	var eventID *primitive.ObjectID
	if req.EventID != "" {
		id, err := primitive.ObjectIDFromHex(req.EventID)
		if err != nil {
			uierrors.Error(w, http.StatusUnprocessableEntity, "invalid event id")
			return
		}
		eventID = &id
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	task, err := h.Store.Create(ctx, taskstore.CreateInput{
		Title:           req.Title,
		Description:     req.Description,
		EventID:         eventID,
		Domain:          req.Domain,
		Priority:        req.Priority,
		Status:          req.Status,
		AssignedToEmail: req.AssignedToEmail,
		AssignedToName:  req.AssignedToName,
		DueDate:         req.DueDate,
		CreatedByEmail:  res.Email,
		CreatedByName:   res.Name,
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "tasks: create failed", err, "Unable to create task.")
		return
	}
	uierrors.JSON(w, http.StatusCreated, task)
}

// Update handles PUT /tasks/{id}. Senior roles only. Status is not
// editable here: Upcoming/Today moves go through UpdateStatus and
// completion through Complete, so the points award path stays single.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	if res := gates.RequireSenior(w, r); !res.OK {
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.Error(w, http.StatusUnprocessableEntity, "invalid task id")
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		uierrors.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" {
		uierrors.Error(w, http.StatusUnprocessableEntity, "title is required")
		return
	}

	var eventID *primitive.ObjectID
	if req.EventID != "" {
		eid, err := primitive.ObjectIDFromHex(req.EventID)
		if err != nil {
			uierrors.Error(w, http.StatusUnprocessableEntity, "invalid event id")
			return
		}
		eventID = &eid
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	task, err := h.Store.Update(ctx, id, taskstore.UpdateInput{
		Title:           req.Title,
		Description:     req.Description,
		EventID:         eventID,
		Domain:          req.Domain,
		Priority:        req.Priority,
		AssignedToEmail: req.AssignedToEmail,
		AssignedToName:  req.AssignedToName,
		DueDate:         req.DueDate,
	})
	if err != nil {
		if errors.Is(err, taskstore.ErrNotFound) {
			uierrors.Error(w, http.StatusNotFound, "task not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "tasks: update failed", err, "Unable to update task.")
		return
	}
	uierrors.JSON(w, http.StatusOK, task)
}

// Complete handles POST /tasks/{id}/complete. The status write wins the
// race before points are awarded, so a task never pays out twice even
// under concurrent completion requests. An award failure after the write
// does not fail the request: the completion stands and the error is
// logged.
func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	res := gates.RequireAuth(w, r)
	if !res.OK {
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.Error(w, http.StatusUnprocessableEntity, "invalid task id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// Members may complete only their own tasks; senior roles may complete any.
	existing, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, taskstore.ErrNotFound) {
			uierrors.Error(w, http.StatusNotFound, "task not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "tasks: lookup failed", err, "Unable to complete task.")
		return
	}
	if !models.IsSeniorRole(res.Role) && !strings.EqualFold(existing.AssignedToEmail, res.Email) {
		uierrors.Error(w, http.StatusForbidden, "task is assigned to another member")
		return
	}

	task, err := h.Store.Complete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, taskstore.ErrNotFound):
			uierrors.Error(w, http.StatusNotFound, "task not found")
		case errors.Is(err, taskstore.ErrAlreadyCompleted):
			uierrors.Error(w, http.StatusConflict, "task already completed")
		default:
			h.ErrLog.LogServerError(w, r, "tasks: complete failed", err, "Unable to complete task.")
		}
		return
	}

	if task.AssignedToEmail != "" {
		if err := h.Scoring.Award(ctx, task.AssignedToEmail, scoring.PointsTaskCompletion, "task_completion"); err != nil {
			h.Log.Error("tasks: points award failed after completion",
				zap.String("task_id", task.ID.Hex()),
				zap.String("assignee", task.AssignedToEmail),
				zap.Error(err))
		}
	}

	uierrors.JSON(w, http.StatusOK, task)
}

type statusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /tasks/{id}/status for the Upcoming/Today
// transitions. Completion goes through Complete.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if res := gates.RequireSenior(w, r); !res.OK {
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.Error(w, http.StatusUnprocessableEntity, "invalid task id")
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		uierrors.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	switch err := h.Store.UpdateStatus(ctx, id, req.Status); {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, taskstore.ErrNotFound):
		uierrors.Error(w, http.StatusNotFound, "task not found")
	case errors.Is(err, taskstore.ErrAlreadyCompleted):
		uierrors.Error(w, http.StatusConflict, "task already completed")
	case req.Status == models.TaskCompleted || !models.IsValidTaskStatus(req.Status):
		uierrors.Error(w, http.StatusUnprocessableEntity, `status must be "Upcoming"|"Today"`)
	default:
		h.ErrLog.LogServerError(w, r, "tasks: status update failed", err, "Unable to update task.")
	}
}

// Delete handles DELETE /tasks/{id}. Senior roles only.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if res := gates.RequireSenior(w, r); !res.OK {
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.Error(w, http.StatusUnprocessableEntity, "invalid task id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		if errors.Is(err, taskstore.ErrNotFound) {
			uierrors.Error(w, http.StatusNotFound, "task not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "tasks: delete failed", err, "Unable to delete task.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
