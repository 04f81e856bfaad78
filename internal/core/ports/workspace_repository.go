package ports

import (
	"context"

	"github.com/taskflow/workspace-api/internal/core/domain"
)

// WorkspaceRepository is the typed accessor over workspace and membership
// records.
type WorkspaceRepository interface {
	// Create inserts the workspace row and the creator's owner membership as
	// a single atomic unit: no workspace is ever visible without its owner.
	Create(ctx context.Context, name string, ownerID int64) (*domain.Workspace, error)

	// FindByID returns domain.ErrWorkspaceNotFound when the workspace is
	// absent.
	FindByID(ctx context.Context, id int64) (*domain.Workspace, error)

	// FindMembership returns domain.ErrMembershipNotFound when the caller
	// has no membership in the workspace.
	FindMembership(ctx context.Context, workspaceID, userID int64) (*domain.Membership, error)

	// ListByUser returns every workspace the user belongs to together with
	// their role, newest workspace first (ties broken by ascending id).
	ListByUser(ctx context.Context, userID int64) ([]domain.WorkspaceWithRole, error)

	// ListMembers returns the public member projections for a workspace,
	// ordered by join time ascending.
	ListMembers(ctx context.Context, workspaceID int64) ([]domain.Member, error)

	// AddMember inserts a membership. The composite (workspace_id, user_id)
	// key is the authoritative guard against concurrent duplicate invites; a
	// constraint violation yields domain.ErrAlreadyMember.
	AddMember(ctx context.Context, workspaceID, userID int64, role string) (*domain.Membership, error)
}
