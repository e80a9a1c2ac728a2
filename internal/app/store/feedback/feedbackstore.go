package feedbackstore

import (
	"context"
	"errors"
	"time"

	"github.com/campushq/societyhub/internal/app/system/normalize"
	"github.com/campushq/societyhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("feedback")}
}

var ErrBadRating = errors.New("rating must be between 1 and 5")

// CreateInput holds the fields for a new feedback record.
type CreateInput struct {
	EventID   primitive.ObjectID
	UserEmail string
	UserName  string
	Rating    int
	Comments  string
}

// Create appends a feedback record. Feedback is append-only: a member may
// submit multiple records for the same event and each one counts toward
// their engagement level.
func (s *Store) Create(ctx context.Context, in CreateInput) (models.Feedback, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return models.Feedback{}, ErrBadRating
	}

	fb := models.Feedback{
		ID:        primitive.NewObjectID(),
		EventID:   in.EventID,
		UserEmail: normalize.Email(in.UserEmail),
		UserName:  in.UserName,
		Rating:    in.Rating,
		Comments:  in.Comments,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := s.c.InsertOne(ctx, fb); err != nil {
		return models.Feedback{}, err
	}
	return fb, nil
}

// ListByEvent returns all feedback for one event, newest first.
func (s *Store) ListByEvent(ctx context.Context, eventID primitive.ObjectID) ([]models.Feedback, error) {
	return s.list(ctx, bson.M{"event_id": eventID})
}

// ListByUser returns all feedback submitted by one member.
func (s *Store) ListByUser(ctx context.Context, email string) ([]models.Feedback, error) {
	return s.list(ctx, bson.M{"user_email": normalize.Email(email)})
}

// ListAll returns every feedback record.
func (s *Store) ListAll(ctx context.Context) ([]models.Feedback, error) {
	return s.list(ctx, bson.M{})
}

func (s *Store) list(ctx context.Context, q bson.M) ([]models.Feedback, error) {
	cur, err := s.c.Find(ctx, q, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var recs []models.Feedback
	if err := cur.All(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}
