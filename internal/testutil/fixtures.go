package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/campushq/societyhub/internal/app/system/normalize"
	"github.com/campushq/societyhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a test user with the given role and points.
func (f *Fixtures) CreateUser(ctx context.Context, name, email, role string, points int64) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Email:     normalize.Email(email),
		Name:      name,
		Role:      role,
		Points:    points,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateEvent creates a test event.
func (f *Fixtures) CreateEvent(ctx context.Context, title string) models.Event {
	f.t.Helper()

	now := time.Now().UTC()
	event := models.Event{
		ID:             primitive.NewObjectID(),
		Title:          title,
		Date:           now.AddDate(0, 0, 7),
		Priority:       "Medium",
		Type:           "Workshop",
		CreatedByEmail: "eb@test.com",
		CreatedAt:      now,
	}

	if _, err := f.db.Collection("events").InsertOne(ctx, event); err != nil {
		f.t.Fatalf("failed to create test event: %v", err)
	}
	return event
}

// CreateTask creates a test task assigned to the given email.
func (f *Fixtures) CreateTask(ctx context.Context, title, assignedToEmail, status string) models.Task {
	f.t.Helper()

	now := time.Now().UTC()
	task := models.Task{
		ID:              primitive.NewObjectID(),
		Title:           title,
		Priority:        "Medium",
		Status:          status,
		AssignedToEmail: normalize.Email(assignedToEmail),
		DueDate:         now.AddDate(0, 0, 3),
		CreatedByEmail:  "eb@test.com",
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if _, err := f.db.Collection("tasks").InsertOne(ctx, task); err != nil {
		f.t.Fatalf("failed to create test task: %v", err)
	}
	return task
}

// CreateAttendance creates a test attendance record.
func (f *Fixtures) CreateAttendance(ctx context.Context, eventID primitive.ObjectID, userEmail, status string) models.Attendance {
	f.t.Helper()

	rec := models.Attendance{
		ID:            primitive.NewObjectID(),
		EventID:       eventID,
		UserEmail:     normalize.Email(userEmail),
		Status:        status,
		MarkedByEmail: "eb@test.com",
		MarkedAt:      time.Now().UTC(),
	}

	if _, err := f.db.Collection("attendance").InsertOne(ctx, rec); err != nil {
		f.t.Fatalf("failed to create test attendance: %v", err)
	}
	return rec
}

// CreateFeedback creates a test feedback record.
func (f *Fixtures) CreateFeedback(ctx context.Context, eventID primitive.ObjectID, userEmail string, rating int) models.Feedback {
	f.t.Helper()

	fb := models.Feedback{
		ID:        primitive.NewObjectID(),
		EventID:   eventID,
		UserEmail: normalize.Email(userEmail),
		Rating:    rating,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("feedback").InsertOne(ctx, fb); err != nil {
		f.t.Fatalf("failed to create test feedback: %v", err)
	}
	return fb
}
