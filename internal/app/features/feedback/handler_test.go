package feedback_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	uierrors "github.com/campushq/societyhub/internal/app/features/errors"
	feedbackfeature "github.com/campushq/societyhub/internal/app/features/feedback"
	"github.com/campushq/societyhub/internal/app/scoring"
	feedbackstore "github.com/campushq/societyhub/internal/app/store/feedback"
	userstore "github.com/campushq/societyhub/internal/app/store/users"
	"github.com/campushq/societyhub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*feedbackfeature.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	engine := scoring.NewEngine(userstore.New(db), logger)
	return feedbackfeature.NewHandler(db, engine, uierrors.NewErrorLogger(logger), logger), db
}

func submitRequest(t *testing.T, handler *feedbackfeature.Handler, eventID, body string, user testutil.TestUser) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/events/"+eventID+"/feedback", strings.NewReader(body))
	req = testutil.WithUser(req, user)
	req = testutil.WithChiURLParam(req, "id", eventID)
	rec := httptest.NewRecorder()
	handler.Submit(rec, req)
	return rec
}

func TestSubmitAwardsPerSubmission(t *testing.T) {
	handler, db := newTestHandler(t)
	f := testutil.NewFixtures(t, db)
	users := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f.CreateUser(ctx, "Test Member", "member@test.com", "Member", 0)
	ev := f.CreateEvent(ctx, "Workshop")

	// Feedback is append-only: every submission earns points.
	for i := 0; i < 2; i++ {
		rec := submitRequest(t, handler, ev.ID.Hex(), `{"rating":4,"comments":"solid session"}`, testutil.MemberUser())
		if rec.Code != http.StatusCreated {
			t.Fatalf("submit #%d: status = %d, want 201; body: %s", i+1, rec.Code, rec.Body.String())
		}
	}

	u, err := users.GetByEmail(ctx, "member@test.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if want := int64(2 * scoring.PointsFeedback); u.Points != want {
		t.Errorf("points = %d, want %d", u.Points, want)
	}
}

func TestSubmitSanitizesComments(t *testing.T) {
	handler, db := newTestHandler(t)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f.CreateUser(ctx, "Test Member", "member@test.com", "Member", 0)
	ev := f.CreateEvent(ctx, "XSS bait")

	body := `{"rating":3,"comments":"<script>alert('x')</script>good event"}`
	rec := submitRequest(t, handler, ev.ID.Hex(), body, testutil.MemberUser())
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "<script>") {
		t.Errorf("script tag survived sanitization: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "good event") {
		t.Errorf("safe text stripped: %s", rec.Body.String())
	}
}

func TestSubmitBadRating(t *testing.T) {
	handler, db := newTestHandler(t)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ev := f.CreateEvent(ctx, "Ratings")

	for _, body := range []string{`{"rating":0}`, `{"rating":6}`} {
		rec := submitRequest(t, handler, ev.ID.Hex(), body, testutil.MemberUser())
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("body %s: status = %d, want 422", body, rec.Code)
		}
	}
}

func TestSubmitUnknownEvent(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := submitRequest(t, handler, "64f000000000000000000000", `{"rating":4}`, testutil.MemberUser())
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestListByEventSeniorOnly(t *testing.T) {
	handler, db := newTestHandler(t)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ev := f.CreateEvent(ctx, "Private reads")

	req := testutil.NewAuthenticatedRequest("GET", "/events/"+ev.ID.Hex()+"/feedback", testutil.MemberUser())
	req = testutil.WithChiURLParam(req, "id", ev.ID.Hex())
	rec := httptest.NewRecorder()
	handler.ListByEvent(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

// The insert is the source of truth: when the points write fails after
// the feedback has persisted, the request still reports 201 and the
// score lag is only logged. The engine here points at a disconnected
// client so Award fails with a real store error, not the unknown-member
// no-op.
func TestSubmitAwardFailureStillCreated(t *testing.T) {
	db := testutil.SetupTestDB(t)
	deadDB := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := deadDB.Client().Disconnect(ctx); err != nil {
		t.Fatalf("disconnect: %v", err)
	}
	engine := scoring.NewEngine(userstore.New(deadDB), logger)
	handler := feedbackfeature.NewHandler(db, engine, uierrors.NewErrorLogger(logger), logger)

	f := testutil.NewFixtures(t, db)
	f.CreateUser(ctx, "Test Member", "member@test.com", "Member", 0)
	ev := f.CreateEvent(ctx, "Workshop")

	rec := submitRequest(t, handler, ev.ID.Hex(), `{"rating":5,"comments":"great"}`, testutil.MemberUser())
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", rec.Code, rec.Body.String())
	}

	recs, err := feedbackstore.New(db).ListByEvent(ctx, ev.ID)
	if err != nil {
		t.Fatalf("ListByEvent: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("feedback records = %d, want 1", len(recs))
	}

	u, err := userstore.New(db).GetByEmail(ctx, "member@test.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if u.Points != 0 {
		t.Errorf("points = %d, want 0 (award must not have landed)", u.Points)
	}
}
