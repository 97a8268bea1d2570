package ports

import (
	"context"

	"foodorder/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new user and attaches the store-assigned id.
	// A duplicate username yields an errs.ValueAlreadyExistsError and
	// leaves no partial state behind.
	Add(ctx context.Context, aggregate *user.User) error

	// GetByUsername retrieves a user by their unique username.
	// Returns an errs.ObjectNotFoundError when no such user exists.
	GetByUsername(ctx context.Context, username string) (*user.User, error)
}
