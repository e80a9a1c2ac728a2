package userstore_test

import (
	"sync"
	"testing"

	userstore "github.com/campushq/societyhub/internal/app/store/users"
	"github.com/campushq/societyhub/internal/domain/models"
	"github.com/campushq/societyhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := models.User{
		Name:  "Asha Rao",
		Email: "Asha.Rao@Soc.EDU",
		Role:  "Core",
	}

	created, err := store.Create(ctx, user)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.Email != "asha.rao@soc.edu" {
		t.Errorf("email not normalized: got %q", created.Email)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if created.Points != 0 {
		t.Errorf("new user points: got %d, want 0", created.Points)
	}
}

func TestStore_Create_BadRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.User{
		Name:  "Nobody",
		Email: "nobody@soc.edu",
		Role:  "Alumni",
	})
	if err == nil {
		t.Fatal("expected error for unknown role")
	}
}

func TestStore_GetByEmail_CaseInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateUser(ctx, "Asha Rao", "asha@soc.edu", models.RoleCore, 0)

	u, err := store.GetByEmail(ctx, "ASHA@SOC.EDU")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if u.Name != "Asha Rao" {
		t.Errorf("name: got %q", u.Name)
	}
}

func TestStore_GetByEmail_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.GetByEmail(ctx, "ghost@soc.edu"); err != userstore.ErrNotFound {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestStore_IncrementPoints(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateUser(ctx, "Asha Rao", "asha@soc.edu", models.RoleCore, 5)

	if err := store.IncrementPoints(ctx, "asha@soc.edu", 20); err != nil {
		t.Fatalf("IncrementPoints failed: %v", err)
	}

	u, err := store.GetByEmail(ctx, "asha@soc.edu")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if u.Points != 25 {
		t.Errorf("points: got %d, want 25", u.Points)
	}
	// Non-destructive to other fields.
	if u.Name != "Asha Rao" || u.Role != models.RoleCore {
		t.Errorf("other fields changed: name=%q role=%q", u.Name, u.Role)
	}
}

func TestStore_IncrementPoints_UnknownEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.IncrementPoints(ctx, "ghost@soc.edu", 10); err != userstore.ErrNotFound {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

// Two concurrent awards for the same user must both land: the increment is
// a server-side $inc, not a read-modify-write.
func TestStore_IncrementPoints_Concurrent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateUser(ctx, "Asha Rao", "asha@soc.edu", models.RoleCore, 0)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = store.IncrementPoints(ctx, "asha@soc.edu", 10)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("IncrementPoints #%d failed: %v", i, err)
		}
	}

	u, err := store.GetByEmail(ctx, "asha@soc.edu")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if u.Points != 20 {
		t.Errorf("points after concurrent awards: got %d, want 20", u.Points)
	}
}

func TestStore_GetAll_CreationOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, email := range []string{"a@soc.edu", "b@soc.edu", "c@soc.edu"} {
		if _, err := store.Create(ctx, models.User{Name: email, Email: email, Role: models.RoleMember}); err != nil {
			t.Fatalf("Create(%s) failed: %v", email, err)
		}
	}

	users, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("got %d users, want 3", len(users))
	}
	for i, want := range []string{"a@soc.edu", "b@soc.edu", "c@soc.edu"} {
		if users[i].Email != want {
			t.Errorf("position %d: got %q, want %q", i, users[i].Email, want)
		}
	}
}
