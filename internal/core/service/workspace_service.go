package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskflow/workspace-api/internal/core/domain"
	"github.com/taskflow/workspace-api/internal/core/ports"
)

// WorkspaceService orchestrates the multi-step workspace operations. The
// atomicity-sensitive work (workspace + owner membership) is delegated to the
// repository, which wraps it in a store transaction.
type WorkspaceService struct {
	workspaces ports.WorkspaceRepository
	users      ports.UserRepository
	authz      *Authorizer
}

func NewWorkspaceService(workspaces ports.WorkspaceRepository, users ports.UserRepository, authz *Authorizer) *WorkspaceService {
	return &WorkspaceService{workspaces: workspaces, users: users, authz: authz}
}

// Create makes a new workspace with the caller as its owner. Both rows become
// visible together or not at all.
func (s *WorkspaceService) Create(ctx context.Context, callerID int64, name string) (*domain.Workspace, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: workspace name is required", domain.ErrValidation)
	}
	return s.workspaces.Create(ctx, name, callerID)
}

// List returns the caller's workspaces with their role in each, newest first.
func (s *WorkspaceService) List(ctx context.Context, callerID int64) ([]domain.WorkspaceWithRole, error) {
	return s.workspaces.ListByUser(ctx, callerID)
}

// Detail returns the workspace and its member list. The membership check runs
// before the existence check: a non-member receives domain.ErrNotMember even
// for a workspace id that does not exist.
func (s *WorkspaceService) Detail(ctx context.Context, callerID, workspaceID int64) (*domain.WorkspaceDetail, error) {
	if _, err := s.authz.RequireMembership(ctx, callerID, workspaceID); err != nil {
		return nil, err
	}

	ws, err := s.workspaces.FindByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	members, err := s.workspaces.ListMembers(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	return &domain.WorkspaceDetail{Workspace: *ws, Members: members}, nil
}

// Invite adds a registered user to the workspace as a member. Only owners may
// invite, and an invitation never creates an account: an unknown email yields
// domain.ErrUserNotFound. The already-a-member pre-check leaves a race window
// under concurrent invites; the composite key on (workspace_id, user_id) is
// the authoritative guard and surfaces as domain.ErrAlreadyMember.
func (s *WorkspaceService) Invite(ctx context.Context, callerID, workspaceID int64, email string) (*domain.Membership, error) {
	if _, err := s.authz.RequireOwner(ctx, callerID, workspaceID); err != nil {
		return nil, err
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}

	invitee, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: they need to register first", domain.ErrUserNotFound)
		}
		return nil, err
	}

	if _, err := s.workspaces.FindMembership(ctx, workspaceID, invitee.ID); err == nil {
		return nil, domain.ErrAlreadyMember
	} else if !errors.Is(err, domain.ErrMembershipNotFound) {
		return nil, err
	}

	return s.workspaces.AddMember(ctx, workspaceID, invitee.ID, domain.RoleMember)
}
