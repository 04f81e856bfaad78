package ports

import (
	"context"

	"github.com/taskflow/workspace-api/internal/core/domain"
)

// UserRepository is the typed accessor over user records. Row mapping and
// constraint-violation detection live entirely in the implementation.
type UserRepository interface {
	// Create inserts a user with a hashed credential and returns the stored
	// record. A duplicate email yields domain.ErrUserExists, whether caught
	// by a pre-check or by the store's unique constraint.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}
