package taskstore

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
	return &Store{c: db.Collection("tasks")}
}

var (
	ErrNotFound         = errors.New("task not found")
	ErrAlreadyCompleted = errors.New("task already completed")
	errBadStatus        = errors.New(`status must be "Upcoming"|"Today"|"Completed"`)
)

// CreateInput holds the fields for a new task.
type CreateInput struct {
	Title           string
	Description     string
	EventID         *primitive.ObjectID
	Domain          string
	Priority        string
	Status          string
	AssignedToEmail string
	AssignedToName  string
	DueDate         time.Time
	CreatedByEmail  string
	CreatedByName   string
}

// Create inserts a new task. An empty status defaults to Upcoming.
func (s *Store) Create(ctx context.Context, in CreateInput) (models.Task, error) {
	if in.Status == "" {
		in.Status = models.TaskUpcoming
	}
	if !models.IsValidTaskStatus(in.Status) {
		return models.Task{}, errBadStatus
	}

	now := time.Now().UTC()
	task := models.Task{
		ID:              primitive.NewObjectID(),
		Title:           normalize.Name(in.Title),
		Description:     in.Description,
		EventID:         in.EventID,
		Domain:          in.Domain,
		Priority:        in.Priority,
		Status:          in.Status,
		AssignedToEmail: normalize.Email(in.AssignedToEmail),
		AssignedToName:  in.AssignedToName,
		DueDate:         in.DueDate,
		CreatedByEmail:  normalize.Email(in.CreatedByEmail),
		CreatedByName:   in.CreatedByName,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if _, err := s.c.InsertOne(ctx, task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// GetByID loads a task by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Task, error) {
	var task models.Task
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&task); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

// Filter narrows List results. Zero-value fields are not applied.
type Filter struct {
	Domain   string
	Priority string
	Status   string
	Assignee string // matched against the lower-cased assignee email
}

// List returns tasks matching the filter, newest first.
func (s *Store) List(ctx context.Context, f Filter) ([]models.Task, error) {
	q := bson.M{}
	if f.Domain != "" {
		q["domain"] = f.Domain
	}
	if f.Priority != "" {
		q["priority"] = f.Priority
	}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.Assignee != "" {
		q["assigned_to_email"] = normalize.Email(f.Assignee)
	}

	cur, err := s.c.Find(ctx, q, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var tasks []models.Task
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListByAssignee returns every task assigned to the given email.
func (s *Store) ListByAssignee(ctx context.Context, email string) ([]models.Task, error) {
	return s.List(ctx, Filter{Assignee: email})
}

// Complete marks a task Completed. The transition is one-way and the
// filter on status makes it race-free: only one caller can ever move a
// given task into Completed, so completion points are awarded at most once.
func (s *Store) Complete(ctx context.Context, id primitive.ObjectID) (*models.Task, error) {
	res := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "status": bson.M{"$ne": models.TaskCompleted}},
		bson.M{"$set": bson.M{"status": models.TaskCompleted, "updated_at": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var task models.Task
	if err := res.Decode(&task); err != nil {
		if err != mongo.ErrNoDocuments {
			return nil, err
		}
		// Either the task does not exist or it was already completed.
		if _, err := s.GetByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, ErrAlreadyCompleted
	}
	return &task, nil
}

// UpdateInput holds the editable task fields. Status and creator
// attribution are not editable here; status changes go through
// UpdateStatus or Complete.
type UpdateInput struct {
	Title           string
	Description     string
	EventID         *primitive.ObjectID
	Domain          string
	Priority        string
	AssignedToEmail string
	AssignedToName  string
	DueDate         time.Time
}

// Update replaces a task's editable fields and bumps updated_at.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, in UpdateInput) (*models.Task, error) {
	res := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"title":             normalize.Name(in.Title),
			"description":       in.Description,
			"event_id":          in.EventID,
			"domain":            in.Domain,
			"priority":          in.Priority,
			"assigned_to_email": normalize.Email(in.AssignedToEmail),
			"assigned_to_name":  in.AssignedToName,
			"due_date":          in.DueDate,
			"updated_at":        time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var task models.Task
	if err := res.Decode(&task); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

// UpdateStatus sets a non-Completed status (Upcoming/Today). Completion
// must go through Complete so points are awarded exactly once.
func (s *Store) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	if status != models.TaskUpcoming && status != models.TaskToday {
		return errBadStatus
	}
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "status": bson.M{"$ne": models.TaskCompleted}},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		if _, err := s.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrAlreadyCompleted
	}
	return nil
}

// Delete removes a task by ID.
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
