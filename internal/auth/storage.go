package auth

import (
	"context"
	"time"
)

// Storage persists User records. Implementations must enforce email
// uniqueness at the store level; a duplicate-email Create must fail with
// ErrEmailAlreadyExists even under concurrent inserts.
type Storage interface {
	// FindByEmail returns the user with the exact stored email, or
	// ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Create inserts a new user and returns it with the store-assigned ID.
	// Returns ErrEmailAlreadyExists if the email is taken.
	Create(ctx context.Context, user *User) (*User, error)

	// Update replaces the stored user document. Fields left at their zero
	// value (reset token, expiry) are removed from the stored record in the
	// same write.
	Update(ctx context.Context, user *User) error

	// FindByResetToken returns the user holding the given reset token with an
	// expiry after now. The token value and expiry are matched in a single
	// query so an expired token can never validate. Returns ErrUserNotFound
	// when no such user exists.
	FindByResetToken(ctx context.Context, token string, now time.Time) (*User, error)
}
