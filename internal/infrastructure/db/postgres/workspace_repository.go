package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/taskflow/workspace-api/internal/core/domain"
)

// WorkspaceRepository is the PostgreSQL membership store adapter. It owns
// workspace and membership persistence, including the one transaction in the
// system that a correctness invariant depends on.
type WorkspaceRepository struct {
	db *sql.DB
}

func NewWorkspaceRepository(db *sql.DB) *WorkspaceRepository {
	return &WorkspaceRepository{db: db}
}

// Create inserts the workspace and its owner membership in one transaction.
// If either insert fails, neither row becomes visible: a workspace can never
// exist without an owner.
func (r *WorkspaceRepository) Create(ctx context.Context, name string, ownerID int64) (*domain.Workspace, error) {
	ws := &domain.Workspace{Name: name, CreatedBy: ownerID}

	err := withTx(ctx, r.db, func(ctx context.Context, tx DBTX) error {
		err := tx.QueryRowContext(ctx,
			`INSERT INTO workspaces (name, created_by)
			 VALUES ($1, $2)
			 RETURNING id, created_at`,
			name, ownerID,
		).Scan(&ws.ID, &ws.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert workspace: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO workspace_members (workspace_id, user_id, role)
			 VALUES ($1, $2, $3)`,
			ws.ID, ownerID, domain.RoleOwner,
		)
		if err != nil {
			return fmt.Errorf("insert owner membership: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ws, nil
}

func (r *WorkspaceRepository) FindByID(ctx context.Context, id int64) (*domain.Workspace, error) {
	ws := &domain.Workspace{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_by, created_at
		 FROM workspaces
		 WHERE id = $1`,
		id,
	).Scan(&ws.ID, &ws.Name, &ws.CreatedBy, &ws.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("find workspace: %w", err)
	}
	return ws, nil
}

func (r *WorkspaceRepository) FindMembership(ctx context.Context, workspaceID, userID int64) (*domain.Membership, error) {
	m := &domain.Membership{}
	err := r.db.QueryRowContext(ctx,
		`SELECT workspace_id, user_id, role, joined_at
		 FROM workspace_members
		 WHERE workspace_id = $1 AND user_id = $2`,
		workspaceID, userID,
	).Scan(&m.WorkspaceID, &m.UserID, &m.Role, &m.JoinedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("find membership: %w", err)
	}
	return m, nil
}

// ListByUser returns the user's workspaces newest first; equal creation times
// are broken by ascending workspace id so the order is stable.
func (r *WorkspaceRepository) ListByUser(ctx context.Context, userID int64) ([]domain.WorkspaceWithRole, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT w.id, w.name, w.created_by, w.created_at, wm.role
		 FROM workspaces w
		 JOIN workspace_members wm ON w.id = wm.workspace_id
		 WHERE wm.user_id = $1
		 ORDER BY w.created_at DESC, w.id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	defer rows.Close()

	list := []domain.WorkspaceWithRole{}
	for rows.Next() {
		var w domain.WorkspaceWithRole
		if err := rows.Scan(&w.ID, &w.Name, &w.CreatedBy, &w.CreatedAt, &w.Role); err != nil {
			return nil, fmt.Errorf("scan workspace: %w", err)
		}
		list = append(list, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	return list, nil
}

// ListMembers returns public member projections ordered by join time; the
// password hash column is never selected here.
func (r *WorkspaceRepository) ListMembers(ctx context.Context, workspaceID int64) ([]domain.Member, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT u.id, u.name, u.email, COALESCE(u.avatar_url, ''), wm.role, wm.joined_at
		 FROM users u
		 JOIN workspace_members wm ON u.id = wm.user_id
		 WHERE wm.workspace_id = $1
		 ORDER BY wm.joined_at ASC, wm.user_id ASC`,
		workspaceID,
	)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	members := []domain.Member{}
	for rows.Next() {
		var m domain.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.AvatarURL, &m.Role, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}

func (r *WorkspaceRepository) AddMember(ctx context.Context, workspaceID, userID int64, role string) (*domain.Membership, error) {
	m := &domain.Membership{WorkspaceID: workspaceID, UserID: userID, Role: role}
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO workspace_members (workspace_id, user_id, role)
		 VALUES ($1, $2, $3)
		 RETURNING joined_at`,
		workspaceID, userID, role,
	).Scan(&m.JoinedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrAlreadyMember
		}
		return nil, fmt.Errorf("insert membership: %w", err)
	}
	return m, nil
}
