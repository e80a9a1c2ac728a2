package tasks_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	uierrors "github.com/campushq/societyhub/internal/app/features/errors"
	tasksfeature "github.com/campushq/societyhub/internal/app/features/tasks"
	"github.com/campushq/societyhub/internal/app/scoring"
	userstore "github.com/campushq/societyhub/internal/app/store/users"
	"github.com/campushq/societyhub/internal/domain/models"
	"github.com/campushq/societyhub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*tasksfeature.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	engine := scoring.NewEngine(userstore.New(db), logger)
	return tasksfeature.NewHandler(db, engine, uierrors.NewErrorLogger(logger), logger), db
}

func TestCompleteAwardsPointsOnce(t *testing.T) {
	handler, db := newTestHandler(t)
	f := testutil.NewFixtures(t, db)
	users := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f.CreateUser(ctx, "Test Member", "member@test.com", "Member", 0)
	task := f.CreateTask(ctx, "Design poster", "member@test.com", models.TaskToday)

	complete := func() *httptest.ResponseRecorder {
		req := testutil.NewAuthenticatedRequest("POST", "/tasks/"+task.ID.Hex()+"/complete", testutil.MemberUser())
		req = testutil.WithChiURLParam(req, "id", task.ID.Hex())
		rec := httptest.NewRecorder()
		handler.Complete(rec, req)
		return rec
	}

	if rec := complete(); rec.Code != http.StatusOK {
		t.Fatalf("first complete: status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if rec := complete(); rec.Code != http.StatusConflict {
		t.Errorf("second complete: status = %d, want 409", rec.Code)
	}

	u, err := users.GetByEmail(ctx, "member@test.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if u.Points != scoring.PointsTaskCompletion {
		t.Errorf("points = %d, want %d (awarded exactly once)", u.Points, scoring.PointsTaskCompletion)
	}
}

func TestCompleteOtherMembersTaskForbidden(t *testing.T) {
	handler, db := newTestHandler(t)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	task := f.CreateTask(ctx, "Someone else's", "other@test.com", models.TaskToday)

	req := testutil.NewAuthenticatedRequest("POST", "/tasks/"+task.ID.Hex()+"/complete", testutil.MemberUser())
	req = testutil.WithChiURLParam(req, "id", task.ID.Hex())
	rec := httptest.NewRecorder()
	handler.Complete(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestSeniorCanCompleteAnyTask(t *testing.T) {
	handler, db := newTestHandler(t)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	task := f.CreateTask(ctx, "Assigned elsewhere", "other@test.com", models.TaskToday)

	req := testutil.NewAuthenticatedRequest("POST", "/tasks/"+task.ID.Hex()+"/complete", testutil.CoreUser())
	req = testutil.WithChiURLParam(req, "id", task.ID.Hex())
	rec := httptest.NewRecorder()
	handler.Complete(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
}

func TestCompleteUnknownAssigneeStillSucceeds(t *testing.T) {
	handler, db := newTestHandler(t)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// No user record for the assignee: the award is skipped but the
	// completion must stand.
	task := f.CreateTask(ctx, "Orphan assignee", "ghost@test.com", models.TaskToday)

	req := testutil.NewAuthenticatedRequest("POST", "/tasks/"+task.ID.Hex()+"/complete", testutil.EBUser())
	req = testutil.WithChiURLParam(req, "id", task.ID.Hex())
	rec := httptest.NewRecorder()
	handler.Complete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), models.TaskCompleted) {
		t.Errorf("response missing completed status: %s", rec.Body.String())
	}
}

func TestCreateRequiresSeniorRole(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := testutil.NewAuthenticatedRequest("POST", "/tasks", testutil.MemberUser())
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestCreateFromJSON(t *testing.T) {
	handler, _ := newTestHandler(t)

	body := `{"title":"Plan hackathon","assigned_to_email":"Member@Test.Com","priority":"High","due_date":"2026-09-15T00:00:00Z"}`
	req := httptest.NewRequest("POST", "/tasks", strings.NewReader(body))
	req = testutil.WithUser(req, testutil.EBUser())
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"member@test.com"`) {
		t.Errorf("assignee email not normalized: %s", rec.Body.String())
	}
}
