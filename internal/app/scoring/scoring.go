// Package scoring awards engagement points to members. All awards go
// through a single atomic increment on the user document so concurrent
// awards never lose updates.
package scoring

import (
	"context"
	"errors"

	userstore "github.com/campushq/societyhub/internal/app/store/users"
	"go.uber.org/zap"
)

// Point values per qualifying activity.
const (
	PointsAttendance     = 20
	PointsTaskCompletion = 10
	PointsFeedback       = 10
)

// Engine awards points for qualifying activities.
type Engine struct {
	users *userstore.Store
	log   *zap.Logger
}

func NewEngine(users *userstore.Store, log *zap.Logger) *Engine {
	return &Engine{users: users, log: log}
}

// Award adds points to the user with the given email. A missing user is
// not an error: the triggering activity (attendance mark, task completion,
// feedback submission) has already been recorded and must stand, so the
// award is logged and skipped. Store failures are returned to the caller,
// who decides whether the surrounding operation already succeeded.
func (e *Engine) Award(ctx context.Context, email string, points int64, activity string) error {
	err := e.users.IncrementPoints(ctx, email, points)
	if err == nil {
		e.log.Info("points awarded",
			zap.String("email", email),
			zap.Int64("points", points),
			zap.String("activity", activity))
		return nil
	}
	if errors.Is(err, userstore.ErrNotFound) {
		e.log.Warn("points award skipped: no user with email",
			zap.String("email", email),
			zap.Int64("points", points),
			zap.String("activity", activity))
		return nil
	}
	return err
}
