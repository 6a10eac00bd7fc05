// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"medimart/internal/domain/entity"
)

// ErrRecordNotFound is a domain-specific error returned when a persisted record is absent.
var ErrRecordNotFound = errors.New("record not found")

// CredentialRepository persists the two records the client keeps between
// runs: the signed-in user snapshot and the opaque auth token. Everything
// else is server-sourced and refetched on demand.
//
// All operations are best-effort I/O. Callers log failures and carry on;
// a failed write leaves the in-memory session ahead of the persisted copy,
// which the next login naturally repairs.
type CredentialRepository interface {
	// GetUser retrieves the persisted user snapshot.
	// Returns ErrRecordNotFound when nothing is stored.
	GetUser(ctx context.Context) (*entity.User, error)

	// SaveUser persists the user snapshot. A nil user removes the record.
	SaveUser(ctx context.Context, user *entity.User) error

	// GetToken retrieves the persisted auth token.
	// Returns ErrRecordNotFound when nothing is stored.
	GetToken(ctx context.Context) (string, error)

	// SaveToken persists the auth token. An empty token removes the record.
	SaveToken(ctx context.Context, token string) error

	// ClearAll removes both records.
	ClearAll(ctx context.Context) error
}
