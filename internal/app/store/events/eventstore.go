package eventstore

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
	return &Store{c: db.Collection("events")}
}

var (
	ErrNotFound = errors.New("event not found")
	errBadType  = errors.New(`type must be "Workshop"|"Hackathon"|"Meet"|"Event"`)
)

// CreateInput holds the fields for a new event.
type CreateInput struct {
	Title          string
	Description    string
	Date           time.Time
	Time           string
	Venue          string
	Priority       string
	Type           string
	CreatedByEmail string
	CreatedByName  string
}

// Create inserts a new event.
func (s *Store) Create(ctx context.Context, in CreateInput) (models.Event, error) {
	switch in.Type {
	case "Workshop", "Hackathon", "Meet", "Event":
	default:
		return models.Event{}, errBadType
	}

	ev := models.Event{
		ID:             primitive.NewObjectID(),
		Title:          normalize.Name(in.Title),
		Description:    in.Description,
		Date:           in.Date,
		Time:           in.Time,
		Venue:          in.Venue,
		Priority:       in.Priority,
		Type:           in.Type,
		CreatedByEmail: normalize.Email(in.CreatedByEmail),
		CreatedByName:  in.CreatedByName,
		CreatedAt:      time.Now().UTC(),
	}

	if _, err := s.c.InsertOne(ctx, ev); err != nil {
		return models.Event{}, err
	}
	return ev, nil
}

// GetByID loads an event by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	var ev models.Event
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&ev); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ev, nil
}

// List returns all events, most recent first.
func (s *Store) List(ctx context.Context) ([]models.Event, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var events []models.Event
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Delete removes an event by ID. Attendance and feedback records that
// reference it are kept; they still count toward member analytics.
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
