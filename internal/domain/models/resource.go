// internal/domain/models/resource.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Resource is a shared link scoped to one of the society's departments.
type Resource struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	URL         string             `bson:"url" json:"url"`
	Department  string             `bson:"department" json:"department"` // Tech | Marketing | Content | Media

	CreatedByEmail string    `bson:"created_by_email" json:"created_by_email"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}
