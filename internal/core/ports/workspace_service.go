package ports

import (
	"context"

	"github.com/taskflow/workspace-api/internal/core/domain"
)

// WorkspaceService orchestrates workspace lifecycle operations on behalf of
// an authenticated caller.
type WorkspaceService interface {
	Create(ctx context.Context, callerID int64, name string) (*domain.Workspace, error)
	List(ctx context.Context, callerID int64) ([]domain.WorkspaceWithRole, error)
	// Detail checks membership before existence: a non-member receives
	// domain.ErrNotMember without learning whether the workspace exists.
	Detail(ctx context.Context, callerID, workspaceID int64) (*domain.WorkspaceDetail, error)
	// Invite is owner-only and never creates accounts implicitly: the
	// invitee must already be registered.
	Invite(ctx context.Context, callerID, workspaceID int64, email string) (*domain.Membership, error)
}
