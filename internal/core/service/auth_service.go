package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/taskflow/workspace-api/internal/core/domain"
	"github.com/taskflow/workspace-api/internal/core/ports"
)

// AuthService implements registration and credential login on top of the
// user repository, the password hasher, and the token service.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// Register creates an account and issues a token bound to the new user id.
// The email pre-check leaves a race window under concurrent registration; the
// store's unique constraint on email is the real guard, and the repository
// reports a violation as domain.ErrUserExists.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*domain.User, string, error) {
	if email == "" || password == "" || name == "" {
		return nil, "", fmt.Errorf("%w: email, password and name are required", domain.ErrValidation)
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, "", domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", err
	}

	hash, err := s.hasher.Hash(ctx, password)
	if err != nil {
		return nil, "", err
	}

	user, err := s.users.Create(ctx, &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user.Public(), token, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password both yield domain.ErrInvalidCredentials so a caller cannot probe
// which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user.Public(), token, nil
}
