package resourcestore

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
	return &Store{c: db.Collection("resources")}
}

var (
	ErrNotFound      = errors.New("resource not found")
	errBadDepartment = errors.New(`department must be "Tech"|"Marketing"|"Content"|"Media"`)
)

// CreateInput holds the fields for a new resource link.
type CreateInput struct {
	Title          string
	Description    string
	URL            string
	Department     string
	CreatedByEmail string
}

// Create inserts a new resource.
func (s *Store) Create(ctx context.Context, in CreateInput) (models.Resource, error) {
	switch in.Department {
	case "Tech", "Marketing", "Content", "Media":
	default:
		return models.Resource{}, errBadDepartment
	}

	res := models.Resource{
		ID:             primitive.NewObjectID(),
		Title:          normalize.Name(in.Title),
		Description:    in.Description,
		URL:            in.URL,
		Department:     in.Department,
		CreatedByEmail: normalize.Email(in.CreatedByEmail),
		CreatedAt:      time.Now().UTC(),
	}

	if _, err := s.c.InsertOne(ctx, res); err != nil {
		return models.Resource{}, err
	}
	return res, nil
}

// List returns resources, optionally filtered by department, newest first.
func (s *Store) List(ctx context.Context, department string) ([]models.Resource, error) {
	q := bson.M{}
	if department != "" {
		q["department"] = department
	}

	cur, err := s.c.Find(ctx, q, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var resources []models.Resource
	if err := cur.All(ctx, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

// Delete removes a resource by ID.
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
