package domain

import "time"

const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

// Workspace is a shared tenant resource. Immutable after creation within this
// service; every workspace has an owner membership from the moment it exists.
type Workspace struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedBy int64     `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// Membership joins a user to a workspace with a role. At most one membership
// exists per (workspace, user) pair, enforced by the store's composite key.
type Membership struct {
	WorkspaceID int64     `json:"workspace_id"`
	UserID      int64     `json:"user_id"`
	Role        string    `json:"role"`
	JoinedAt    time.Time `json:"joined_at"`
}

// WorkspaceWithRole is a workspace annotated with the caller's own role in it,
// as returned by the workspace listing.
type WorkspaceWithRole struct {
	Workspace
	Role string `json:"role"`
}

// Member is the public projection of a workspace member: user fields minus
// the credential digest, plus membership metadata.
type Member struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Role      string    `json:"role"`
	JoinedAt  time.Time `json:"joined_at"`
}

// WorkspaceDetail bundles a workspace with its member list, ordered by join
// time ascending.
type WorkspaceDetail struct {
	Workspace
	Members []Member `json:"members"`
}
