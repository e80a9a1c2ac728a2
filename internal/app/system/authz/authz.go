// Package authz provides request-level authorization helpers over the
// session user. Route-level middleware (auth.RequireSignedIn,
// auth.RequireRole) does coarse gating; handlers use these helpers when they
// need the caller's identity or a finer role check.
package authz

import (
	"net/http"

	"github.com/campushq/societyhub/internal/app/system/auth"
	"github.com/campushq/societyhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserCtx returns the user's role, name, email, Mongo ObjectID, and a found
// flag. If no user is present in context or the user ID is malformed, it
// returns zero values and false, so ok=true means a valid, authenticated
// user with a valid ObjectID.
func UserCtx(r *http.Request) (role, name, email string, userID primitive.ObjectID, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return "", "", "", primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		// Malformed user ID in session - fail closed.
		return "", "", "", primitive.NilObjectID, false
	}
	return user.Role, user.Name, user.Email, userID, true
}

// IsSenior reports whether the current request's user holds a senior role
// (EB, EC, or Core) permitted to create and edit content.
func IsSenior(r *http.Request) bool {
	u, ok := auth.CurrentUser(r)
	return ok && models.IsSeniorRole(u.Role)
}

// IsBoard reports whether the current request's user is EB or EC, the roles
// permitted to view all-member analytics.
func IsBoard(r *http.Request) bool {
	u, ok := auth.CurrentUser(r)
	return ok && models.IsBoardRole(u.Role)
}
