package gates_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campushq/societyhub/internal/app/system/auth"
	"github.com/campushq/societyhub/internal/app/system/gates"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func requestWithRole(role string) *http.Request {
	req := httptest.NewRequest("GET", "/", nil)
	return auth.WithTestUser(req, &auth.SessionUser{
		ID:    primitive.NewObjectID().Hex(),
		Name:  "Test User",
		Email: "test@soc.edu",
		Role:  role,
	})
}

func TestRequireAuth_NoUser(t *testing.T) {
	rec := httptest.NewRecorder()
	res := gates.RequireAuth(rec, httptest.NewRequest("GET", "/", nil))

	if res.OK {
		t.Error("expected OK=false without a user")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireAuth_WithUser(t *testing.T) {
	rec := httptest.NewRecorder()
	res := gates.RequireAuth(rec, requestWithRole("Member"))

	if !res.OK {
		t.Fatal("expected OK=true")
	}
	if res.Email != "test@soc.edu" {
		t.Errorf("email: got %q", res.Email)
	}
}

func TestRequireSenior(t *testing.T) {
	tests := []struct {
		role   string
		wantOK bool
	}{
		{"EB", true},
		{"EC", true},
		{"Core", true},
		{"Member", false},
		{"Alumni", false},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			rec := httptest.NewRecorder()
			res := gates.RequireSenior(rec, requestWithRole(tt.role))
			if res.OK != tt.wantOK {
				t.Errorf("RequireSenior(%s): OK=%v, want %v", tt.role, res.OK, tt.wantOK)
			}
			if !tt.wantOK && rec.Code != http.StatusForbidden {
				t.Errorf("status: got %d, want %d", rec.Code, http.StatusForbidden)
			}
		})
	}
}

func TestRequireBoard(t *testing.T) {
	tests := []struct {
		role   string
		wantOK bool
	}{
		{"EB", true},
		{"EC", true},
		{"Core", false},
		{"Member", false},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			rec := httptest.NewRecorder()
			res := gates.RequireBoard(rec, requestWithRole(tt.role))
			if res.OK != tt.wantOK {
				t.Errorf("RequireBoard(%s): OK=%v, want %v", tt.role, res.OK, tt.wantOK)
			}
		})
	}
}
