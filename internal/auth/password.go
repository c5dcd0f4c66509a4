package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/bookpoint/bookpoint/pkg/async"
)

// DefaultBcryptCost matches the work factor the rest of the deployment
// expects; raising it invalidates no existing hashes but slows logins.
const DefaultBcryptCost = 10

// Hasher produces and verifies salted one-way password hashes.
//
// bcrypt is CPU-bound, so both operations are dispatched through a future
// rather than run inline; the caller still sees a synchronous call shape.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given bcrypt cost.
// A non-positive cost falls back to DefaultBcryptCost.
func NewHasher(cost int) Hasher {
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	return Hasher{cost: cost}
}

// Hash returns the bcrypt hash of the plaintext. The plaintext is never
// logged or stored.
func (h Hasher) Hash(ctx context.Context, plaintext string) (string, error) {
	f := async.Async(ctx, plaintext, func(_ context.Context, pw string) (string, error) {
		b, err := bcrypt.GenerateFromPassword([]byte(pw), h.cost)
		return string(b), err
	})
	return f.Await()
}

// Verify reports whether the plaintext matches the stored hash.
func (h Hasher) Verify(ctx context.Context, plaintext, hash string) bool {
	f := async.Async(ctx, plaintext, func(_ context.Context, pw string) (bool, error) {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil, nil
	})
	ok, err := f.Await()
	return err == nil && ok
}
