// Package auth implements the credential lifecycle: registration, login,
// and password recovery. It owns the user model, the password hasher, the
// reset-token manager, and the storage contract; token signing and HTTP
// transport live in their own packages.
package auth
