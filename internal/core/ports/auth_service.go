package ports

import (
	"context"

	"github.com/taskflow/workspace-api/internal/core/domain"
)

// AuthService covers account registration and credential login.
type AuthService interface {
	// Register creates an account and returns the public user projection
	// plus a freshly issued token.
	Register(ctx context.Context, email, password, name string) (*domain.User, string, error)
	// Login verifies credentials and returns the public user projection plus
	// a freshly issued token. Unknown email and wrong password are
	// indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}
