package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/bookpoint/bookpoint/pkg/email"
	"github.com/bookpoint/bookpoint/pkg/jwt"
	"github.com/bookpoint/bookpoint/pkg/logger"
)

// Service orchestrates the register, login, forgot-password, and
// reset-password flows over the credential store, password hasher, token
// issuer, and reset-token manager.
type Service struct {
	storage Storage
	tokens  *jwt.Service
	mailer  email.EmailSender
	hasher  Hasher
	reset   *ResetTokenManager
	logger  *slog.Logger
	appURL  string
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithBcryptCost sets the bcrypt cost for password hashing.
func WithBcryptCost(cost int) Option {
	return func(s *Service) { s.hasher = NewHasher(cost) }
}

// WithResetTokenTTL sets the TTL for password reset tokens.
func WithResetTokenTTL(ttl time.Duration) Option {
	return func(s *Service) { s.reset = NewResetTokenManager(s.storage, ttl) }
}

// WithAppURL sets the frontend base URL used to build reset links.
func WithAppURL(url string) Option {
	return func(s *Service) {
		if url != "" {
			s.appURL = url
		}
	}
}

// NewService creates the auth service. Storage, token service, and mailer
// are required collaborators; policy values come from options.
func NewService(storage Storage, tokens *jwt.Service, mailer email.EmailSender, opts ...Option) *Service {
	s := &Service{
		storage: storage,
		tokens:  tokens,
		mailer:  mailer,
		hasher:  NewHasher(DefaultBcryptCost),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		appURL:  "http://localhost:3000",
	}
	s.reset = NewResetTokenManager(storage, DefaultResetTokenTTL)

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// RegisterInput carries the registration fields. FirstName, Email, and
// Password are required; LastName is optional.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Register creates a new user with a hashed password and returns its public
// summary. Fails with ErrMissingFields on absent required fields and
// ErrEmailAlreadyExists on a duplicate email.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*User, error) {
	if in.FirstName == "" || in.Email == "" || in.Password == "" {
		return nil, ErrMissingFields
	}

	_, err := s.storage.FindByEmail(ctx, in.Email)
	if err == nil {
		return nil, ErrEmailAlreadyExists
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := s.hasher.Hash(ctx, in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// The unique index backstops the existence check above; a concurrent
	// insert with the same email still surfaces as ErrEmailAlreadyExists.
	user, err := s.storage.Create(ctx, &User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  hash,
	})
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered",
		logger.UserID(user.ID.Hex()),
		logger.Component("auth"),
	)
	return user, nil
}

// Login verifies the credentials and returns a signed bearer token with the
// authenticated user. Unknown email and wrong password both return
// ErrInvalidCredentials so responses do not leak account existence.
func (s *Service) Login(ctx context.Context, emailAddr, password string) (string, *User, error) {
	if emailAddr == "" || password == "" {
		return "", nil, ErrMissingFields
	}

	user, err := s.storage.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.hasher.Verify(ctx, password, user.Password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID.Hex(), user.Email, user.FirstName)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return token, user, nil
}

// ForgotPassword attaches a reset token to the user and dispatches the reset
// email without waiting for the outcome; a dispatch failure is logged, never
// surfaced. Fails with ErrUserNotFound for an unknown email.
func (s *Service) ForgotPassword(ctx context.Context, emailAddr string) error {
	if emailAddr == "" {
		return ErrMissingFields
	}

	user, err := s.storage.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	token, _, err := s.reset.Attach(ctx, user)
	if err != nil {
		return err
	}

	// Fire-and-forget: the acknowledgment must not depend on email dispatch.
	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("reset email dispatch panicked",
					logger.UserID(user.ID.Hex()),
					slog.Any("panic", r),
					logger.Component("auth"),
				)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.mailer.SendEmail(ctx, s.resetEmail(user, token)); err != nil {
			s.logger.Error("failed to send reset email",
				logger.UserID(user.ID.Hex()),
				logger.Error(err),
				logger.Component("auth"),
			)
		}
	}()

	return nil
}

// ResetPassword redeems a reset token and applies the new password hash,
// clearing the token fields in the same update so a token is never reusable.
func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	if newPassword == "" {
		return ErrMissingFields
	}

	user, err := s.reset.Redeem(ctx, token)
	if err != nil {
		return err
	}

	hash, err := s.hasher.Hash(ctx, newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.Password = hash
	user.ResetToken = ""
	user.ResetTokenExpiry = time.Time{}

	if err := s.storage.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.logger.Info("password reset",
		logger.UserID(user.ID.Hex()),
		logger.Component("auth"),
	)
	return nil
}

// resetEmail builds the password-reset email for the user.
func (s *Service) resetEmail(user *User, token string) email.SendEmailParams {
	link := fmt.Sprintf("%s/reset-password/%s", s.appURL, token)
	return email.SendEmailParams{
		SendTo:  user.Email,
		Subject: "Reset your BookPoint password",
		BodyHTML: fmt.Sprintf(
			`<p>Hi %s,</p><p>Follow <a href="%s">this link</a> to reset your password. The link expires soon, so use it right away.</p><p>If you did not request a reset, you can ignore this email.</p>`,
			user.FirstName, link,
		),
		Tag: "password-reset",
	}
}
