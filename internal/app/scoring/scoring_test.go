package scoring

import (
	"sync"
	"testing"

	userstore "github.com/campushq/societyhub/internal/app/store/users"
	"github.com/campushq/societyhub/internal/testutil"
	"go.uber.org/zap"
)

func TestAwardIncrementsPoints(t *testing.T) {
	db := testutil.SetupTestDB(t)
	users := userstore.New(db)
	f := testutil.NewFixtures(t, db)
	engine := NewEngine(users, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f.CreateUser(ctx, "Ana", "ana@test.com", "Member", 5)

	if err := engine.Award(ctx, "Ana@Test.Com", PointsAttendance, "attendance"); err != nil {
		t.Fatalf("Award: %v", err)
	}

	got, err := users.GetByEmail(ctx, "ana@test.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.Points != 25 {
		t.Errorf("points = %d, want 25", got.Points)
	}
}

func TestAwardUnknownUserIsNotFatal(t *testing.T) {
	db := testutil.SetupTestDB(t)
	engine := NewEngine(userstore.New(db), zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := engine.Award(ctx, "ghost@test.com", PointsFeedback, "feedback"); err != nil {
		t.Errorf("Award for unknown user: err = %v, want nil", err)
	}
}

func TestConcurrentAwardsAllLand(t *testing.T) {
	db := testutil.SetupTestDB(t)
	users := userstore.New(db)
	f := testutil.NewFixtures(t, db)
	engine := NewEngine(users, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f.CreateUser(ctx, "Ben", "ben@test.com", "Member", 0)

	const n = 10
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := engine.Award(ctx, "ben@test.com", PointsFeedback, "feedback"); err != nil {
				t.Errorf("Award: %v", err)
			}
		}()
	}
	wg.Wait()

	got, err := users.GetByEmail(ctx, "ben@test.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if want := int64(n * PointsFeedback); got.Points != want {
		t.Errorf("points = %d, want %d", got.Points, want)
	}
}
