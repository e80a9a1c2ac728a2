package login_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	uierrors "github.com/campushq/societyhub/internal/app/features/errors"
	loginfeature "github.com/campushq/societyhub/internal/app/features/login"
	"github.com/campushq/societyhub/internal/app/system/auth"
	"github.com/campushq/societyhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newTestHandler(t *testing.T) (*loginfeature.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	if err := auth.InitSessionStore("test-session-key-0123456789", "", false, logger); err != nil {
		t.Fatalf("InitSessionStore: %v", err)
	}
	return loginfeature.NewHandler(db, uierrors.NewErrorLogger(logger), logger), db
}

func seedUserWithPassword(t *testing.T, db *mongo.Database, email, password string) {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	u := f.CreateUser(ctx, "Ana", email, "Member", 0)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	if _, err := db.Collection("users").UpdateOne(ctx,
		bson.M{"_id": u.ID},
		bson.M{"$set": bson.M{"password_hash": string(hash)}}); err != nil {
		t.Fatalf("set password hash: %v", err)
	}
}

func postLogin(t *testing.T, handler *loginfeature.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)
	return rec
}

func TestLogin(t *testing.T) {
	handler, db := newTestHandler(t)
	seedUserWithPassword(t, db, "ana@test.com", "correct horse")

	rec := postLogin(t, handler, `{"email":"Ana@Test.Com","password":"correct horse"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if len(rec.Result().Cookies()) == 0 {
		t.Error("no session cookie set")
	}
	if !strings.Contains(rec.Body.String(), `"ana@test.com"`) {
		t.Errorf("response missing identity: %s", rec.Body.String())
	}
}

func TestLoginWrongPassword(t *testing.T) {
	handler, db := newTestHandler(t)
	seedUserWithPassword(t, db, "ana@test.com", "correct horse")

	rec := postLogin(t, handler, `{"email":"ana@test.com","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

// Unknown email and wrong password must be indistinguishable.
func TestLoginUnknownEmailSameError(t *testing.T) {
	handler, db := newTestHandler(t)
	seedUserWithPassword(t, db, "ana@test.com", "correct horse")

	wrongPass := postLogin(t, handler, `{"email":"ana@test.com","password":"wrong"}`)
	unknown := postLogin(t, handler, `{"email":"ghost@test.com","password":"wrong"}`)

	if wrongPass.Code != unknown.Code {
		t.Errorf("codes differ: %d vs %d", wrongPass.Code, unknown.Code)
	}
	if wrongPass.Body.String() != unknown.Body.String() {
		t.Errorf("bodies differ: %q vs %q", wrongPass.Body.String(), unknown.Body.String())
	}
}

func TestLoginPasswordlessAccountRejected(t *testing.T) {
	handler, db := newTestHandler(t)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Google-only accounts have no password hash and must not accept any
	// password, including the empty string.
	f.CreateUser(ctx, "Ben", "ben@test.com", "Member", 0)

	rec := postLogin(t, handler, `{"email":"ben@test.com","password":"anything"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestLoginMissingFields(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := postLogin(t, handler, `{"email":"ana@test.com"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
}
