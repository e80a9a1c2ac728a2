// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role values for society members. The four roles are fixed; everything in
// the app that gates visibility does so against these strings.
const (
	RoleEB     = "EB"     // executive board
	RoleEC     = "EC"     // executive committee
	RoleCore   = "Core"   // core team
	RoleMember = "Member" // general member
)

// IsValidRole reports whether role is one of the four fixed roles.
func IsValidRole(role string) bool {
	switch role {
	case RoleEB, RoleEC, RoleCore, RoleMember:
		return true
	}
	return false
}

// IsSeniorRole reports whether role may create/edit content (EB, EC, Core).
func IsSeniorRole(role string) bool {
	return role == RoleEB || role == RoleEC || role == RoleCore
}

// IsBoardRole reports whether role may view all-member analytics (EB, EC).
func IsBoardRole(role string) bool {
	return role == RoleEB || role == RoleEC
}

// User represents a society member.
//
// Email is the stable join key used by task, attendance, and feedback
// records; it is stored lower-cased so equality is case-insensitive.
// Points is mutated only through the scoring engine's atomic increment;
// a missing points field reads as 0.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	Name         string             `bson:"name" json:"name"`
	ShortName    string             `bson:"short_name,omitempty" json:"short_name,omitempty"`
	PhotoURL     string             `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	Role         string             `bson:"role" json:"role"` // EB | EC | Core | Member
	Points       int64              `bson:"points,omitempty" json:"points"`
	PasswordHash string             `bson:"password_hash,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
