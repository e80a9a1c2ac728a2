// internal/domain/models/academic.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AcademicMaterial is a shared study resource (notes, papers, links).
type AcademicMaterial struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Subject     string             `bson:"subject,omitempty" json:"subject,omitempty"`
	Link        string             `bson:"link" json:"link"`

	CreatedByEmail string    `bson:"created_by_email" json:"created_by_email"`
	CreatedByName  string    `bson:"created_by_name,omitempty" json:"created_by_name,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}
