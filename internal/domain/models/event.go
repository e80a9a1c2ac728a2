// internal/domain/models/event.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event is a society event (workshop, hackathon, meet, or generic event).
// Attendance and feedback records reference an event by its ID.
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Date        time.Time          `bson:"date" json:"date"`
	Time        string             `bson:"time,omitempty" json:"time,omitempty"`
	Venue       string             `bson:"venue,omitempty" json:"venue,omitempty"`
	Priority    string             `bson:"priority" json:"priority"` // High | Medium | Low
	Type        string             `bson:"type" json:"type"`         // Workshop | Hackathon | Meet | Event

	CreatedByEmail string    `bson:"created_by_email" json:"created_by_email"`
	CreatedByName  string    `bson:"created_by_name,omitempty" json:"created_by_name,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}
