// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"soundflow/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByUsername retrieves a user by exact, case-sensitive username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user. A username that already exists yields ErrDuplicateUsername.
	Create(ctx context.Context, user *entity.User) error

	// UpdateCredentials replaces the salt and hash of an existing user.
	UpdateCredentials(ctx context.Context, username, salt, hash string) error

	// List returns every user, oldest first.
	List(ctx context.Context) ([]*entity.User, error)

	// DeleteAll removes every user row.
	DeleteAll(ctx context.Context) error
}
