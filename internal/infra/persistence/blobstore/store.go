// Package blobstore persists the client's credentials in an opaque
// key-value fashion on top of a gocloud.dev blob bucket: a file-backed
// bucket on device, an in-memory one in tests.
package blobstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"medimart/internal/domain/entity"
	"medimart/internal/domain/repository"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"
)

const (
	keyUser  = "user_data"
	keyToken = "auth_token"
)

// persistedUser is the stored shape of the user snapshot. Kept separate from
// the entity so a future entity change stays decoupled from what is already
// on disk; missing fields default to zero values on read.
type persistedUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Profile  struct {
		Name        string `json:"name"`
		Email       string `json:"email"`
		Phone       string `json:"phone"`
		Gender      string `json:"gender"`
		DateOfBirth string `json:"dateOfBirth"`
	} `json:"profile"`
}

// Store implements repository.CredentialRepository over a blob bucket.
type Store struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// New opens a file-backed credential store rooted at dir, creating the
// directory when absent.
func New(dir string, logger *slog.Logger) (*Store, error) {
	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, errors.Wrapf(err, "open credential bucket at %s", dir)
	}

	return &Store{bucket: bucket, logger: logger}, nil
}

// NewWithBucket wraps an existing bucket. Used by tests with memblob.
func NewWithBucket(bucket *blob.Bucket, logger *slog.Logger) *Store {
	return &Store{bucket: bucket, logger: logger}
}

// Close releases the underlying bucket.
func (s *Store) Close() error {
	return errors.Wrap(s.bucket.Close(), "close credential bucket")
}

// GetUser retrieves the persisted user snapshot.
func (s *Store) GetUser(ctx context.Context) (*entity.User, error) {
	data, err := s.bucket.ReadAll(ctx, keyUser)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrRecordNotFound
		}
		s.logger.Warn("Failed to read persisted user", slog.Any("error", err))

		return nil, errors.Wrap(err, "read persisted user")
	}

	var stored persistedUser
	if err := json.Unmarshal(data, &stored); err != nil {
		// A corrupt record is treated as absent; the next login rewrites it.
		s.logger.Warn("Persisted user record is corrupt", slog.Any("error", err))

		return nil, repository.ErrRecordNotFound
	}

	user := entity.NewUser(stored.ID, stored.Username, stored.Role, entity.Profile{
		Name:        stored.Profile.Name,
		Email:       stored.Profile.Email,
		Phone:       stored.Profile.Phone,
		Gender:      stored.Profile.Gender,
		DateOfBirth: stored.Profile.DateOfBirth,
	})

	return user, nil
}

// SaveUser persists the user snapshot. A nil user removes the record.
func (s *Store) SaveUser(ctx context.Context, user *entity.User) error {
	if user == nil {
		return s.delete(ctx, keyUser)
	}

	var stored persistedUser
	stored.ID = user.ID
	stored.Username = user.Username
	stored.Role = user.Role.String()
	stored.Profile.Name = user.Profile.Name
	stored.Profile.Email = user.Profile.Email
	stored.Profile.Phone = user.Profile.Phone
	stored.Profile.Gender = user.Profile.Gender
	stored.Profile.DateOfBirth = user.Profile.DateOfBirth

	data, err := json.Marshal(stored)
	if err != nil {
		return errors.Wrap(err, "marshal persisted user")
	}

	if err := s.bucket.WriteAll(ctx, keyUser, data, nil); err != nil {
		s.logger.Warn("Failed to persist user", slog.Any("error", err))

		return errors.Wrap(err, "write persisted user")
	}

	return nil
}

// GetToken retrieves the persisted auth token.
func (s *Store) GetToken(ctx context.Context) (string, error) {
	data, err := s.bucket.ReadAll(ctx, keyToken)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return "", repository.ErrRecordNotFound
		}
		s.logger.Warn("Failed to read persisted token", slog.Any("error", err))

		return "", errors.Wrap(err, "read persisted token")
	}
	if len(data) == 0 {
		return "", repository.ErrRecordNotFound
	}

	return string(data), nil
}

// SaveToken persists the auth token. An empty token removes the record.
func (s *Store) SaveToken(ctx context.Context, token string) error {
	if token == "" {
		return s.delete(ctx, keyToken)
	}

	if err := s.bucket.WriteAll(ctx, keyToken, []byte(token), nil); err != nil {
		s.logger.Warn("Failed to persist token", slog.Any("error", err))

		return errors.Wrap(err, "write persisted token")
	}

	return nil
}

// ClearAll removes both records.
func (s *Store) ClearAll(ctx context.Context) error {
	userErr := s.delete(ctx, keyUser)
	tokenErr := s.delete(ctx, keyToken)

	if userErr != nil {
		return userErr
	}

	return tokenErr
}

func (s *Store) delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		s.logger.Warn("Failed to delete persisted record", slog.String("key", key), slog.Any("error", err))

		return errors.Wrapf(err, "delete persisted record %s", key)
	}

	return nil
}
