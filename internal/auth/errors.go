package auth

import "errors"

// Domain errors mapped to HTTP statuses at the transport boundary.
var (
	ErrMissingFields      = errors.New("all required fields must be filled")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrResetTokenInvalid  = errors.New("invalid or expired reset token")
)
