package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is the persisted identity record.
//
// Password always holds a bcrypt hash, never plaintext. The reset fields are
// set on a forgot-password request and cleared on a successful reset; expiry
// governs validity, not presence, so a stale token is harmless.
type User struct {
	ID               bson.ObjectID `bson:"_id,omitempty"`
	FirstName        string        `bson:"firstName"`
	LastName         string        `bson:"lastName,omitempty"`
	Email            string        `bson:"email"`
	Password         string        `bson:"password"`
	ResetToken       string        `bson:"resetToken,omitempty"`
	ResetTokenExpiry time.Time     `bson:"resetTokenExpiry,omitempty"`
}

// PublicUser is the safe-to-return summary of a User. It never carries the
// password hash or reset token material.
type PublicUser struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	Email     string `json:"email"`
}

// Public returns the user summary for API responses.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID.Hex(),
		FirstName: u.FirstName,
		Email:     u.Email,
	}
}
