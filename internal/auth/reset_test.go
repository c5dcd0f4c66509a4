package auth_test

import (
	"context"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookpoint/bookpoint/internal/auth"
)

func TestResetTokenGenerate(t *testing.T) {
	t.Parallel()
	mgr := auth.NewResetTokenManager(newMemStorage(), time.Hour)

	t.Run("tokens are 256-bit hex strings", func(t *testing.T) {
		t.Parallel()
		token, err := mgr.Generate()
		require.NoError(t, err)
		assert.Len(t, token, 64)

		raw, err := hex.DecodeString(token)
		require.NoError(t, err)
		assert.Len(t, raw, 32)
	})

	t.Run("tokens do not repeat", func(t *testing.T) {
		t.Parallel()
		seen := make(map[string]struct{})
		for i := 0; i < 100; i++ {
			token, err := mgr.Generate()
			require.NoError(t, err)
			_, dup := seen[token]
			require.False(t, dup)
			seen[token] = struct{}{}
		}
	})
}

func TestResetTokenAttachAndRedeem(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seedUser := func(t *testing.T, storage *memStorage) *auth.User {
		t.Helper()
		user, err := storage.Create(ctx, &auth.User{
			FirstName: "Anna",
			Email:     "a@x.com",
			Password:  "$2a$04$fakehash",
		})
		require.NoError(t, err)
		return user
	}

	t.Run("attach persists token with future expiry", func(t *testing.T) {
		t.Parallel()
		storage := newMemStorage()
		mgr := auth.NewResetTokenManager(storage, time.Hour)
		user := seedUser(t, storage)

		token, expiry, err := mgr.Attach(ctx, user)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(time.Hour), expiry, time.Minute)

		stored := storage.get("a@x.com")
		assert.Equal(t, token, stored.ResetToken)
		assert.Equal(t, expiry.Unix(), stored.ResetTokenExpiry.Unix())
	})

	t.Run("redeem returns the token holder", func(t *testing.T) {
		t.Parallel()
		storage := newMemStorage()
		mgr := auth.NewResetTokenManager(storage, time.Hour)
		user := seedUser(t, storage)

		token, _, err := mgr.Attach(ctx, user)
		require.NoError(t, err)

		got, err := mgr.Redeem(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("redeem rejects expired token", func(t *testing.T) {
		t.Parallel()
		storage := newMemStorage()
		mgr := auth.NewResetTokenManager(storage, time.Hour)
		user := seedUser(t, storage)

		token, _, err := mgr.Attach(ctx, user)
		require.NoError(t, err)
		storage.expireResetToken("a@x.com")

		_, err = mgr.Redeem(ctx, token)
		assert.ErrorIs(t, err, auth.ErrResetTokenInvalid)
	})

	t.Run("redeem rejects unknown and empty tokens", func(t *testing.T) {
		t.Parallel()
		mgr := auth.NewResetTokenManager(newMemStorage(), time.Hour)

		_, err := mgr.Redeem(ctx, "deadbeef")
		assert.ErrorIs(t, err, auth.ErrResetTokenInvalid)
		_, err = mgr.Redeem(ctx, "")
		assert.ErrorIs(t, err, auth.ErrResetTokenInvalid)
	})
}
