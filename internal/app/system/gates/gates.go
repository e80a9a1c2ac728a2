// Package gates provides authorization gate functions for HTTP handlers.
// Gates check authentication and authorization, writing the appropriate
// JSON error when a check fails.
//
// Route-level middleware (auth.RequireSignedIn, auth.RequireRole) handles
// groups of routes with uniform requirements; gates are for handlers that
// need a different check than their route group, or that need the caller's
// identity alongside the check. Don't stack a gate behind middleware that
// already enforces the same role.
package gates

import (
	"net/http"

	uierrors "github.com/campushq/societyhub/internal/app/features/errors"
	"github.com/campushq/societyhub/internal/app/system/authz"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Result contains the result of an authorization gate check.
type Result struct {
	Role   string
	Name   string
	Email  string
	UserID primitive.ObjectID
	OK     bool
}

// RequireAuth ensures a user is authenticated.
// If not, it writes a 401 JSON error and returns OK=false.
func RequireAuth(w http.ResponseWriter, r *http.Request) Result {
	role, name, email, uid, ok := authz.UserCtx(r)
	if !ok {
		uierrors.Error(w, http.StatusUnauthorized, "sign in required")
		return Result{OK: false}
	}
	return Result{Role: role, Name: name, Email: email, UserID: uid, OK: true}
}

// RequireSenior ensures the user is authenticated and holds a senior role
// (EB, EC, Core). Writes 401/403 JSON errors on failure.
func RequireSenior(w http.ResponseWriter, r *http.Request) Result {
	res := RequireAuth(w, r)
	if !res.OK {
		return res
	}
	if !authz.IsSenior(r) {
		uierrors.Error(w, http.StatusForbidden, "senior role required")
		return Result{OK: false}
	}
	return res
}

// RequireBoard ensures the user is authenticated and is EB or EC.
// Writes 401/403 JSON errors on failure.
func RequireBoard(w http.ResponseWriter, r *http.Request) Result {
	res := RequireAuth(w, r)
	if !res.OK {
		return res
	}
	if !authz.IsBoard(r) {
		uierrors.Error(w, http.StatusForbidden, "EB or EC role required")
		return Result{OK: false}
	}
	return res
}
