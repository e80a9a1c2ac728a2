package announcements_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	announcementsfeature "github.com/campushq/societyhub/internal/app/features/announcements"
	uierrors "github.com/campushq/societyhub/internal/app/features/errors"
	"github.com/campushq/societyhub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*announcementsfeature.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	return announcementsfeature.NewHandler(db, uierrors.NewErrorLogger(logger), logger), db
}

func TestCreateSeniorOnly(t *testing.T) {
	handler, _ := newTestHandler(t)

	body := `{"title":"Notice","content":"Hall booked"}`
	req := httptest.NewRequest("POST", "/announcements", strings.NewReader(body))
	req = testutil.WithUser(req, testutil.MemberUser())
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestCreateSanitizesContent(t *testing.T) {
	handler, _ := newTestHandler(t)

	body := `{"title":"Notice","content":"<p>Meet at 5</p><script>alert('x')</script>","priority":"High"}`
	req := httptest.NewRequest("POST", "/announcements", strings.NewReader(body))
	req = testutil.WithUser(req, testutil.CoreUser())
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "<script>") {
		t.Errorf("script tag survived sanitization: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Meet at 5") {
		t.Errorf("safe content stripped: %s", rec.Body.String())
	}
}

func TestListRequiresAuth(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest("GET", "/announcements", nil)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestCreateMissingFields(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest("POST", "/announcements", strings.NewReader(`{"title":"no content"}`))
	req = testutil.WithUser(req, testutil.EBUser())
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
}
