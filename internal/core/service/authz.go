package service

import (
	"context"
	"errors"

	"github.com/taskflow/workspace-api/internal/core/domain"
	"github.com/taskflow/workspace-api/internal/core/ports"
)

// Authorizer derives and enforces workspace roles. It holds no state beyond
// the repository handle and looks the membership up fresh on every call, so a
// role change in the store takes effect on the next request.
type Authorizer struct {
	memberships ports.WorkspaceRepository
}

func NewAuthorizer(memberships ports.WorkspaceRepository) *Authorizer {
	return &Authorizer{memberships: memberships}
}

// RequireMembership returns the caller's membership in the workspace, or
// domain.ErrNotMember when none exists. It never reveals whether the
// workspace itself exists.
func (a *Authorizer) RequireMembership(ctx context.Context, userID, workspaceID int64) (*domain.Membership, error) {
	m, err := a.memberships.FindMembership(ctx, workspaceID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrMembershipNotFound) {
			return nil, domain.ErrNotMember
		}
		return nil, err
	}
	return m, nil
}

// RequireOwner is RequireMembership plus the owner role; a plain member gets
// domain.ErrOwnerOnly.
func (a *Authorizer) RequireOwner(ctx context.Context, userID, workspaceID int64) (*domain.Membership, error) {
	m, err := a.RequireMembership(ctx, userID, workspaceID)
	if err != nil {
		return nil, err
	}
	if m.Role != domain.RoleOwner {
		return nil, domain.ErrOwnerOnly
	}
	return m, nil
}
