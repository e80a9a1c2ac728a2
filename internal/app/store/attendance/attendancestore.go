package attendancestore

import (
	"context"
	"errors"
	"time"

	"github.com/campushq/societyhub/internal/app/system/normalize"
	"github.com/campushq/societyhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("attendance")}
}

var ErrBadStatus = errors.New(`status must be "Present"|"Absent"`)

// MarkInput holds the fields for marking one member's attendance.
type MarkInput struct {
	EventID       primitive.ObjectID
	UserEmail     string
	UserName      string
	Status        string
	MarkedByEmail string
	MarkedByName  string
}

// Mark upserts the attendance record for (event, user). At most one record
// exists per pair; re-marking overwrites status in place. NewlyPresent is
// true only when this call moved the stored status to Present from either
// no record or Absent, which is the caller's signal to award points. A
// Present record re-marked Present reports false so points stay
// exactly-once.
func (s *Store) Mark(ctx context.Context, in MarkInput) (rec models.Attendance, newlyPresent bool, err error) {
	status := normalize.Status(in.Status)
	if status != models.AttendancePresent && status != models.AttendanceAbsent {
		return models.Attendance{}, false, ErrBadStatus
	}
	email := normalize.Email(in.UserEmail)

	filter := bson.M{"event_id": in.EventID, "user_email": email}
	update := bson.M{
		"$set": bson.M{
			"status":          status,
			"user_name":       in.UserName,
			"marked_by_email": normalize.Email(in.MarkedByEmail),
			"marked_by_name":  in.MarkedByName,
			"marked_at":       time.Now().UTC(),
		},
		"$setOnInsert": bson.M{"_id": primitive.NewObjectID()},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.Before)

	var before models.Attendance
	decodeErr := s.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&before)
	if wafflemongo.IsDup(decodeErr) {
		// Two first-marks raced the upsert against the unique
		// (event, user) index. The loser's record now exists, so a
		// single retry updates it in place.
		decodeErr = s.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&before)
	}

	switch err := decodeErr; {
	case err == mongo.ErrNoDocuments:
		// First mark for this (event, user).
		newlyPresent = status == models.AttendancePresent
	case err != nil:
		return models.Attendance{}, false, err
	default:
		newlyPresent = status == models.AttendancePresent && before.Status != models.AttendancePresent
	}

	if err := s.c.FindOne(ctx, filter).Decode(&rec); err != nil {
		return models.Attendance{}, false, err
	}
	return rec, newlyPresent, nil
}

// ListByEvent returns every attendance record for one event.
func (s *Store) ListByEvent(ctx context.Context, eventID primitive.ObjectID) ([]models.Attendance, error) {
	return s.list(ctx, bson.M{"event_id": eventID})
}

// ListByUser returns every attendance record for one member.
func (s *Store) ListByUser(ctx context.Context, email string) ([]models.Attendance, error) {
	return s.list(ctx, bson.M{"user_email": normalize.Email(email)})
}

// ListAll returns every attendance record.
func (s *Store) ListAll(ctx context.Context) ([]models.Attendance, error) {
	return s.list(ctx, bson.M{})
}

func (s *Store) list(ctx context.Context, q bson.M) ([]models.Attendance, error) {
	cur, err := s.c.Find(ctx, q, options.Find().SetSort(bson.D{{Key: "marked_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var recs []models.Attendance
	if err := cur.All(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}
