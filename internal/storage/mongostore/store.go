package mongostore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/bookpoint/bookpoint/internal/auth"
	mongodb "github.com/bookpoint/bookpoint/pkg/mongo"
)

const usersCollection = "users"

// Store is the MongoDB-backed credential store. It resolves the database
// handle lazily through the shared Connector, so the first request to touch
// storage establishes the connection.
//
// Email uniqueness is enforced with a unique index, not an application-level
// pre-check, so concurrent inserts of the same email cannot both succeed.
type Store struct {
	connector *mongodb.Connector

	mu      sync.Mutex
	indexed bool
}

// New returns a Store over the given connector. No connection is made until
// the first operation.
func New(connector *mongodb.Connector) *Store {
	return &Store{connector: connector}
}

// collection returns the users collection, connecting and ensuring the
// unique email index on first use.
func (s *Store) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := s.connector.Connect(ctx)
	if err != nil {
		return nil, err
	}

	coll := db.Collection(usersCollection)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.indexed {
		_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to ensure email index: %w", err)
		}
		s.indexed = true
	}

	return coll, nil
}

// FindByEmail returns the user with the exact stored email.
func (s *Store) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	coll, err := s.collection(ctx)
	if err != nil {
		return nil, err
	}

	var user auth.User
	if err := coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return &user, nil
}

// Create inserts the user, returning it with the store-assigned ID.
func (s *Store) Create(ctx context.Context, user *auth.User) (*auth.User, error) {
	coll, err := s.collection(ctx)
	if err != nil {
		return nil, err
	}

	res, err := coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, auth.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	user.ID = id
	return user, nil
}

// Update replaces the stored document. Zero-valued reset fields are omitted
// from the replacement, which removes them from the stored record in the
// same atomic write that applies the rest of the update.
func (s *Store) Update(ctx context.Context, user *auth.User) error {
	coll, err := s.collection(ctx)
	if err != nil {
		return err
	}

	res, err := coll.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return auth.ErrUserNotFound
	}
	return nil
}

// FindByResetToken matches the token value and an unexpired expiry in a
// single query, leaving no window where an expired token still validates.
func (s *Store) FindByResetToken(ctx context.Context, token string, now time.Time) (*auth.User, error) {
	coll, err := s.collection(ctx)
	if err != nil {
		return nil, err
	}

	filter := bson.M{
		"resetToken":       token,
		"resetTokenExpiry": bson.M{"$gt": now},
	}

	var user auth.User
	if err := coll.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by reset token: %w", err)
	}
	return &user, nil
}
