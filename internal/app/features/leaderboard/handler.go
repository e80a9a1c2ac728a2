// internal/app/features/leaderboard/handler.go
package leaderboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	uierrors "github.com/campushq/societyhub/internal/app/features/errors"
	userstore "github.com/campushq/societyhub/internal/app/store/users"
	"github.com/campushq/societyhub/internal/app/system/timeouts"
	"github.com/campushq/societyhub/internal/domain/analytics"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the leaderboard views.
type Handler struct {
	DB     *mongo.Database
	Users  *userstore.Store
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

// NewHandler constructs a Leaderboard Handler.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Users:  userstore.New(db),
		Log:    logger,
		ErrLog: errLog,
	}
}

// Serve handles GET /leaderboard: every member ranked by points
// descending, ties broken by account creation order, top three flagged.
// A store failure is a total failure; no partial board is ever served.
// Authentication is enforced by the route group's middleware.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	users, err := h.Users.GetAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "leaderboard: user fetch failed", err, "Unable to load leaderboard.")
		return
	}
	uierrors.JSON(w, http.StatusOK, analytics.ComputeLeaderboard(users))
}

// ServeLive handles GET /leaderboard/live as a server-sent event stream.
// A snapshot is sent immediately, then a fresh board after every change
// to the users collection. Change streams need a replica set; on a
// standalone deployment the watch fails and the endpoint returns 503, so
// clients fall back to polling Serve.
func (h *Handler) ServeLive(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		uierrors.Error(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	ctx := r.Context()

	stream, err := h.Users.Watch(ctx)
	if err != nil {
		h.Log.Warn("leaderboard: change stream unavailable", zap.Error(err))
		uierrors.Error(w, http.StatusServiceUnavailable, "live updates unavailable")
		return
	}
	defer stream.Close(ctx)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	if err := h.sendBoard(ctx, w); err != nil {
		h.Log.Warn("leaderboard: initial snapshot failed", zap.Error(err))
		return
	}
	flusher.Flush()

	for stream.Next(ctx) {
		// The event payload doesn't matter; any user change invalidates
		// the board, so recompute from a fresh read.
		if err := h.sendBoard(ctx, w); err != nil {
			h.Log.Warn("leaderboard: stream update failed", zap.Error(err))
			return
		}
		flusher.Flush()
	}
	if err := stream.Err(); err != nil && ctx.Err() == nil {
		h.Log.Warn("leaderboard: change stream ended", zap.Error(err))
	}
}

func (h *Handler) sendBoard(ctx context.Context, w http.ResponseWriter) error {
	fetchCtx, cancel := context.WithTimeout(ctx, timeouts.Medium())
	defer cancel()

	users, err := h.Users.GetAll(fetchCtx)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(analytics.ComputeLeaderboard(users))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: leaderboard\ndata: %s\n\n", payload)
	return err
}
