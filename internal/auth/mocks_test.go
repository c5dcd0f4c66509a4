package auth_test

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/bookpoint/bookpoint/internal/auth"
	"github.com/bookpoint/bookpoint/pkg/email"
)

// memStorage is an in-memory Storage that mirrors the store-level semantics:
// unique emails on insert and reset-token lookups that check expiry in the
// same operation.
type memStorage struct {
	mu    sync.Mutex
	users map[string]*auth.User // keyed by ID hex
}

func newMemStorage() *memStorage {
	return &memStorage{users: make(map[string]*auth.User)}
}

func (s *memStorage) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, auth.ErrUserNotFound
}

func (s *memStorage) Create(_ context.Context, user *auth.User) (*auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return nil, auth.ErrEmailAlreadyExists
		}
	}
	cp := *user
	cp.ID = bson.NewObjectID()
	s.users[cp.ID.Hex()] = &cp
	out := cp
	return &out, nil
}

func (s *memStorage) Update(_ context.Context, user *auth.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID.Hex()]; !ok {
		return auth.ErrUserNotFound
	}
	cp := *user
	s.users[user.ID.Hex()] = &cp
	return nil
}

func (s *memStorage) FindByResetToken(_ context.Context, token string, now time.Time) (*auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ResetToken == token && u.ResetTokenExpiry.After(now) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, auth.ErrUserNotFound
}

// get returns the stored record by email for assertions.
func (s *memStorage) get(email string) *auth.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp
		}
	}
	return nil
}

// expireResetToken back-dates the stored reset token expiry.
func (s *memStorage) expireResetToken(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			u.ResetTokenExpiry = time.Now().Add(-time.Minute)
		}
	}
}

// recordingMailer captures sent emails and signals each send on a channel.
type recordingMailer struct {
	mu   sync.Mutex
	sent []email.SendEmailParams
	ch   chan email.SendEmailParams
}

func newRecordingMailer() *recordingMailer {
	return &recordingMailer{ch: make(chan email.SendEmailParams, 8)}
}

func (m *recordingMailer) SendEmail(_ context.Context, params email.SendEmailParams) error {
	m.mu.Lock()
	m.sent = append(m.sent, params)
	m.mu.Unlock()
	m.ch <- params
	return nil
}

// waitForEmail blocks until an email is dispatched or the timeout elapses.
func (m *recordingMailer) waitForEmail(timeout time.Duration) (email.SendEmailParams, bool) {
	select {
	case p := <-m.ch:
		return p, true
	case <-time.After(timeout):
		return email.SendEmailParams{}, false
	}
}
