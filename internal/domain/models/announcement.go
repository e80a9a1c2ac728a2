// internal/domain/models/announcement.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Announcement is a dashboard notice, optionally tied to an upcoming event
// (event date/time/venue are free-form display fields, not references).
type Announcement struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	Priority  string             `bson:"priority" json:"priority"` // High | Medium | Low
	EventDate string             `bson:"event_date,omitempty" json:"event_date,omitempty"`
	EventTime string             `bson:"event_time,omitempty" json:"event_time,omitempty"`
	Venue     string             `bson:"venue,omitempty" json:"venue,omitempty"`

	CreatedByEmail string    `bson:"created_by_email" json:"created_by_email"`
	CreatedByName  string    `bson:"created_by_name,omitempty" json:"created_by_name,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}
