package announcementstore

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
	return &Store{c: db.Collection("announcements")}
}

var ErrNotFound = errors.New("announcement not found")

// CreateInput holds the fields for a new announcement. Title and Content
// are expected to be sanitized by the caller before they reach the store.
type CreateInput struct {
	Title          string
	Content        string
	Priority       string
	EventDate      string
	EventTime      string
	Venue          string
	CreatedByEmail string
	CreatedByName  string
}

// Create inserts a new announcement.
func (s *Store) Create(ctx context.Context, in CreateInput) (models.Announcement, error) {
	now := time.Now().UTC()
	ann := models.Announcement{
		ID:             primitive.NewObjectID(),
		Title:          normalize.Name(in.Title),
		Content:        in.Content,
		Priority:       in.Priority,
		EventDate:      in.EventDate,
		EventTime:      in.EventTime,
		Venue:          in.Venue,
		CreatedByEmail: normalize.Email(in.CreatedByEmail),
		CreatedByName:  in.CreatedByName,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := s.c.InsertOne(ctx, ann); err != nil {
		return models.Announcement{}, err
	}
	return ann, nil
}

// Update replaces an announcement's editable fields and bumps updated_at.
// Creator attribution and created_at are left untouched.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, in CreateInput) (models.Announcement, error) {
	res := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"title":      normalize.Name(in.Title),
			"content":    in.Content,
			"priority":   in.Priority,
			"event_date": in.EventDate,
			"event_time": in.EventTime,
			"venue":      in.Venue,
			"updated_at": time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After))

	var ann models.Announcement
	if err := res.Decode(&ann); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Announcement{}, ErrNotFound
		}
		return models.Announcement{}, err
	}
	return ann, nil
}

// List returns all announcements, newest first.
func (s *Store) List(ctx context.Context) ([]models.Announcement, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var anns []models.Announcement
	if err := cur.All(ctx, &anns); err != nil {
		return nil, err
	}
	return anns, nil
}

// Delete removes an announcement by ID.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
