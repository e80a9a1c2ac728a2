package academicstore

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
	return &Store{c: db.Collection("academics")}
}

var ErrNotFound = errors.New("material not found")

// CreateInput holds the fields for a new academic material.
type CreateInput struct {
	Title          string
	Description    string
	Subject        string
	Link           string
	CreatedByEmail string
	CreatedByName  string
}

// Create inserts a new academic material.
func (s *Store) Create(ctx context.Context, in CreateInput) (models.AcademicMaterial, error) {
	mat := models.AcademicMaterial{
		ID:             primitive.NewObjectID(),
		Title:          normalize.Name(in.Title),
		Description:    in.Description,
		Subject:        in.Subject,
		Link:           in.Link,
		CreatedByEmail: normalize.Email(in.CreatedByEmail),
		CreatedByName:  in.CreatedByName,
		CreatedAt:      time.Now().UTC(),
	}

	if _, err := s.c.InsertOne(ctx, mat); err != nil {
		return models.AcademicMaterial{}, err
	}
	return mat, nil
}

// List returns materials, optionally filtered by subject, newest first.
func (s *Store) List(ctx context.Context, subject string) ([]models.AcademicMaterial, error) {
	q := bson.M{}
	if subject != "" {
		q["subject"] = subject
	}

	cur, err := s.c.Find(ctx, q, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var mats []models.AcademicMaterial
	if err := cur.All(ctx, &mats); err != nil {
		return nil, err
	}
	return mats, nil
}

// Delete removes a material by ID.
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
