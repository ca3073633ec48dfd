package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserDB represents a user document in the "users" collection.
type UserDB struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email          string             `bson:"email" json:"email"`                       // Unique email
	Username       string             `bson:"username" json:"username"`                 // Unique username
	PasswordHash   string             `bson:"hashed_password" json:"-"`                 // bcrypt hash, never serialized
	Name           *string            `bson:"name,omitempty" json:"name,omitempty"`     // Optional display name
	Phone          *string            `bson:"phone,omitempty" json:"phone,omitempty"`   // Optional phone number
	PreferredUnits string             `bson:"preferred_units" json:"preferred_units"`   // Distance unit, defaults to "km"
	AvatarURL      *string            `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	IsActive       bool               `bson:"is_active" json:"is_active"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}

// UserPatch carries a partial profile update. Nil pointer = leave untouched,
// except Phone and AvatarURL where ClearPhone/ClearAvatar request an unset.
type UserPatch struct {
	Username       *string
	Phone          *string
	PreferredUnits *string
	AvatarURL      *string
	ClearPhone     bool
	ClearAvatar    bool
}
