package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campushq/societyhub/internal/app/system/auth"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func withTestUser(r *http.Request, role string) *http.Request {
	user := &auth.SessionUser{
		ID:    "507f1f77bcf86cd799439011",
		Name:  "Test User",
		Email: "test@soc.edu",
		Role:  role,
	}
	return auth.WithTestUser(r, user)
}

func TestRequireSignedIn_NoUser_Returns401(t *testing.T) {
	h := auth.RequireSignedIn(okHandler())

	req := httptest.NewRequest("GET", "/analytics/me", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type: got %q, want application/json", ct)
	}
}

func TestRequireSignedIn_WithUser_Proceeds(t *testing.T) {
	h := auth.RequireSignedIn(okHandler())

	req := withTestUser(httptest.NewRequest("GET", "/analytics/me", nil), "Member")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRequireRole_NoUser_Returns401(t *testing.T) {
	h := auth.RequireRole("EB", "EC")(okHandler())

	req := httptest.NewRequest("GET", "/analytics/users", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireRole_WrongRole_Returns403(t *testing.T) {
	h := auth.RequireRole("EB", "EC")(okHandler())

	req := withTestUser(httptest.NewRequest("GET", "/analytics/users", nil), "Member")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestRequireRole_CorrectRole_Proceeds(t *testing.T) {
	h := auth.RequireRole("EB", "EC")(okHandler())

	req := withTestUser(httptest.NewRequest("GET", "/analytics/users", nil), "EC")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRequireRole_CaseInsensitive(t *testing.T) {
	h := auth.RequireRole("eb")(okHandler())

	req := withTestUser(httptest.NewRequest("GET", "/x", nil), "EB")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestCurrentUser_NoUser(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)

	if _, ok := auth.CurrentUser(req); ok {
		t.Error("expected no user in fresh request context")
	}
}

func TestCurrentUser_WithUser(t *testing.T) {
	req := withTestUser(httptest.NewRequest("GET", "/", nil), "Core")

	u, ok := auth.CurrentUser(req)
	if !ok {
		t.Fatal("expected user in context")
	}
	if u.Role != "Core" {
		t.Errorf("role: got %q, want Core", u.Role)
	}
	if u.Email != "test@soc.edu" {
		t.Errorf("email: got %q, want test@soc.edu", u.Email)
	}
}
