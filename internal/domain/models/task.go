// internal/domain/models/task.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task status values. Completion is a one-way transition; there is no
// un-complete path.
const (
	TaskUpcoming  = "Upcoming"
	TaskToday     = "Today"
	TaskCompleted = "Completed"
)

// IsValidTaskStatus reports whether status is a recognized task status.
func IsValidTaskStatus(status string) bool {
	switch status {
	case TaskUpcoming, TaskToday, TaskCompleted:
		return true
	}
	return false
}

// Task is a unit of work assigned to a member. The assignee is referenced
// by lower-cased email, not by user ID.
type Task struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title       string              `bson:"title" json:"title"`
	Description string              `bson:"description,omitempty" json:"description,omitempty"`
	EventID     *primitive.ObjectID `bson:"event_id,omitempty" json:"event_id,omitempty"`
	Domain      string              `bson:"domain,omitempty" json:"domain,omitempty"`
	Priority    string              `bson:"priority" json:"priority"` // High | Medium | Low
	Status      string              `bson:"status" json:"status"`     // Upcoming | Today | Completed

	AssignedToEmail string    `bson:"assigned_to_email,omitempty" json:"assigned_to_email,omitempty"`
	AssignedToName  string    `bson:"assigned_to_name,omitempty" json:"assigned_to_name,omitempty"`
	DueDate         time.Time `bson:"due_date" json:"due_date"`

	CreatedByEmail string    `bson:"created_by_email" json:"created_by_email"`
	CreatedByName  string    `bson:"created_by_name,omitempty" json:"created_by_name,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}
