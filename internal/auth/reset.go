package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"
)

// resetTokenBytes gives 256 bits of entropy per token.
const resetTokenBytes = 32

// DefaultResetTokenTTL is how long a reset token stays redeemable.
const DefaultResetTokenTTL = time.Hour

// ResetTokenManager generates single-use, time-limited tokens for password
// recovery and stores them on the user record.
type ResetTokenManager struct {
	storage Storage
	ttl     time.Duration
}

// NewResetTokenManager returns a manager storing tokens via the given
// storage. A non-positive ttl falls back to DefaultResetTokenTTL.
func NewResetTokenManager(storage Storage, ttl time.Duration) *ResetTokenManager {
	if ttl <= 0 {
		ttl = DefaultResetTokenTTL
	}
	return &ResetTokenManager{storage: storage, ttl: ttl}
}

// Generate returns a cryptographically unpredictable opaque token.
func (m *ResetTokenManager) Generate() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Attach generates a token, sets it with its expiry on the user, and
// persists the user. The token and its expiry are returned.
func (m *ResetTokenManager) Attach(ctx context.Context, user *User) (string, time.Time, error) {
	token, err := m.Generate()
	if err != nil {
		return "", time.Time{}, err
	}

	expiry := time.Now().Add(m.ttl)
	user.ResetToken = token
	user.ResetTokenExpiry = expiry

	if err := m.storage.Update(ctx, user); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to store reset token: %w", err)
	}
	return token, expiry, nil
}

// Redeem looks up the user holding an unexpired token. Token value and
// expiry are checked in a single storage query, so an expired token can
// never validate. The caller must clear the token fields in the same update
// that applies the new password hash.
func (m *ResetTokenManager) Redeem(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, ErrResetTokenInvalid
	}

	user, err := m.storage.FindByResetToken(ctx, token, time.Now())
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrResetTokenInvalid
		}
		return nil, fmt.Errorf("failed to look up reset token: %w", err)
	}
	return user, nil
}
