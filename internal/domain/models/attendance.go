// internal/domain/models/attendance.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attendance status values.
const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
)

// Attendance records a single member's attendance for one event.
// The (event_id, user_email) pair is unique: re-marking updates the
// existing record in place rather than accumulating duplicates.
type Attendance struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventID   primitive.ObjectID `bson:"event_id" json:"event_id"`
	UserEmail string             `bson:"user_email" json:"user_email"`
	UserName  string             `bson:"user_name,omitempty" json:"user_name,omitempty"`
	Status    string             `bson:"status" json:"status"` // Present | Absent

	MarkedByEmail string    `bson:"marked_by_email" json:"marked_by_email"`
	MarkedByName  string    `bson:"marked_by_name,omitempty" json:"marked_by_name,omitempty"`
	MarkedAt      time.Time `bson:"marked_at" json:"marked_at"`
}
