// internal/domain/models/feedback.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feedback is a member's rating and comments for an event. Append-only.
type Feedback struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventID   primitive.ObjectID `bson:"event_id" json:"event_id"`
	UserEmail string             `bson:"user_email" json:"user_email"`
	UserName  string             `bson:"user_name,omitempty" json:"user_name,omitempty"`
	Rating    int                `bson:"rating" json:"rating"` // 1..5
	Comments  string             `bson:"comments,omitempty" json:"comments,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
