package ports

import (
	"context"

	"github.com/taskflow/workspace-api/internal/core/domain"
)

// PasswordHasher produces and checks salted one-way credential digests.
type PasswordHasher interface {
	// Hash derives a digest with a fresh embedded salt. Failures are fatal
	// for the calling operation.
	Hash(ctx context.Context, plaintext string) (string, error)
	// Verify reports whether plaintext matches digest using a comparison
	// that does not leak where the inputs diverge. A mismatch is not an
	// error.
	Verify(plaintext, digest string) bool
}

// TokenService issues and verifies the stateless bearer tokens that stand in
// for sessions.
type TokenService interface {
	Issue(userID int64, email string) (string, error)
	// Verify returns the embedded identity, or domain.ErrInvalidToken for
	// every failure mode without distinguishing them.
	Verify(token string) (*domain.Identity, error)
}
