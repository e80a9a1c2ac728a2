// internal/app/features/analytics/handler.go
package analytics

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/campushq/societyhub/internal/app/features/errors"
	attendancestore "github.com/campushq/societyhub/internal/app/store/attendance"
	feedbackstore "github.com/campushq/societyhub/internal/app/store/feedback"
	taskstore "github.com/campushq/societyhub/internal/app/store/tasks"
	userstore "github.com/campushq/societyhub/internal/app/store/users"
	"github.com/campushq/societyhub/internal/app/system/gates"
	"github.com/campushq/societyhub/internal/app/system/timeouts"
	"github.com/campushq/societyhub/internal/domain/analytics"
	"github.com/campushq/societyhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Handler owns the analytics views.
type Handler struct {
	DB         *mongo.Database
	Users      *userstore.Store
	Tasks      *taskstore.Store
	Attendance *attendancestore.Store
	Feedback   *feedbackstore.Store
	Log        *zap.Logger
	ErrLog     *uierrors.ErrorLogger
}

// NewHandler constructs an Analytics Handler.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:         db,
		Users:      userstore.New(db),
		Tasks:      taskstore.New(db),
		Attendance: attendancestore.New(db),
		Feedback:   feedbackstore.New(db),
		Log:        logger,
		ErrLog:     errLog,
	}
}

// ServeMine handles GET /analytics/me. The user's records are fetched
// concurrently; if any fetch fails the whole view fails with 500 rather
// than reporting misleading zero rates.
func (h *Handler) ServeMine(w http.ResponseWriter, r *http.Request) {
	res := gates.RequireAuth(w, r)
	if !res.OK {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, res.Email)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			uierrors.Error(w, http.StatusNotFound, "member record not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "analytics: user fetch failed", err, "Unable to load analytics.")
		return
	}

	var (
		tasks      []models.Task
		attendance []models.Attendance
		feedback   []models.Feedback
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		tasks, err = h.Tasks.ListByAssignee(gctx, user.Email)
		return err
	})
	g.Go(func() (err error) {
		attendance, err = h.Attendance.ListByUser(gctx, user.Email)
		return err
	})
	g.Go(func() (err error) {
		feedback, err = h.Feedback.ListByUser(gctx, user.Email)
		return err
	})
	if err := g.Wait(); err != nil {
		h.ErrLog.LogServerError(w, r, "analytics: record fetch failed", err, "Unable to load analytics.")
		return
	}

	uierrors.JSON(w, http.StatusOK, analytics.UserWithAnalytics{
		User:      *user,
		Analytics: analytics.ComputeUserAnalytics(*user, tasks, attendance, feedback),
	})
}

// ServeAll handles GET /analytics/users. The route group's EB/EC
// middleware runs before a single record is fetched. All four
// collections are read concurrently and any failure fails the whole
// view.
func (h *Handler) ServeAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	all, err := h.fetchAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "analytics: full fetch failed", err, "Unable to load member analytics.")
		return
	}
	uierrors.JSON(w, http.StatusOK, all)
}

// fetchAll reads every collection the all-members view needs and computes
// the per-member analytics, ordered by role seniority.
func (h *Handler) fetchAll(ctx context.Context) ([]analytics.UserWithAnalytics, error) {
	var (
		users      []models.User
		tasks      []models.Task
		attendance []models.Attendance
		feedback   []models.Feedback
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		users, err = h.Users.GetAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		tasks, err = h.Tasks.List(gctx, taskstore.Filter{})
		return err
	})
	g.Go(func() (err error) {
		attendance, err = h.Attendance.ListAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		feedback, err = h.Feedback.ListAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return analytics.ComputeAllUsersAnalytics(users, tasks, attendance, feedback), nil
}
