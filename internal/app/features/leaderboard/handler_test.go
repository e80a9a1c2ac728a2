package leaderboard_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	uierrors "github.com/campushq/societyhub/internal/app/features/errors"
	leaderboardfeature "github.com/campushq/societyhub/internal/app/features/leaderboard"
	domain "github.com/campushq/societyhub/internal/domain/analytics"
	"github.com/campushq/societyhub/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// newTestRouter mounts the handler the way bootstrap does, so the
// signed-in middleware on the route group is part of what is tested.
func newTestRouter(t *testing.T) (chi.Router, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	handler := leaderboardfeature.NewHandler(db, uierrors.NewErrorLogger(logger), logger)
	r := chi.NewRouter()
	handler.MountRoutes(r)
	return r, db
}

func TestServe(t *testing.T) {
	router, db := newTestRouter(t)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f.CreateUser(ctx, "Ana", "ana@test.com", "Member", 50)
	f.CreateUser(ctx, "Ben", "ben@test.com", "Member", 70)
	f.CreateUser(ctx, "Cam", "cam@test.com", "Core", 70)
	f.CreateUser(ctx, "Dia", "dia@test.com", "EB", 10)

	req := testutil.NewAuthenticatedRequest("GET", "/", testutil.MemberUser())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var board []domain.LeaderboardEntry
	if err := json.NewDecoder(rec.Body).Decode(&board); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(board) != 4 {
		t.Fatalf("entries = %d, want 4", len(board))
	}

	// Ties break by account creation order: Ben was created before Cam.
	wantEmails := []string{"ben@test.com", "cam@test.com", "ana@test.com", "dia@test.com"}
	for i, want := range wantEmails {
		if board[i].User.Email != want {
			t.Errorf("rank %d = %q, want %q", i+1, board[i].User.Email, want)
		}
		if board[i].Rank != i+1 {
			t.Errorf("entry %d rank = %d, want %d", i, board[i].Rank, i+1)
		}
		if wantTop := i < 3; board[i].TopThree != wantTop {
			t.Errorf("entry %d TopThree = %v, want %v", i, board[i].TopThree, wantTop)
		}
	}
}

func TestServeRequiresAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, target := range []string{"/", "/live"} {
		req := httptest.NewRequest("GET", target, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("GET %s status = %d, want 401", target, rec.Code)
		}
	}
}

func TestServeEmpty(t *testing.T) {
	router, _ := newTestRouter(t)

	req := testutil.NewAuthenticatedRequest("GET", "/", testutil.MemberUser())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var board []domain.LeaderboardEntry
	if err := json.NewDecoder(rec.Body).Decode(&board); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(board) != 0 {
		t.Errorf("entries = %d, want 0", len(board))
	}
}
