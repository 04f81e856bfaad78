package service

import (
	"context"
	"errors"
	"testing"

	"github.com/taskflow/workspace-api/internal/core/domain"
)

func TestAuthorizer_RequireMembership(t *testing.T) {
	repo := newStubWorkspaceRepo()
	authz := NewAuthorizer(repo)

	ws, _ := repo.Create(context.Background(), "Team", 1)

	m, err := authz.RequireMembership(context.Background(), 1, ws.ID)
	if err != nil {
		t.Fatalf("RequireMembership returned error: %v", err)
	}
	if m.Role != domain.RoleOwner {
		t.Fatalf("unexpected role: %s", m.Role)
	}

	if _, err := authz.RequireMembership(context.Background(), 2, ws.ID); !errors.Is(err, domain.ErrNotMember) {
		t.Fatalf("expected ErrNotMember, got %v", err)
	}
}

func TestAuthorizer_RequireOwner(t *testing.T) {
	repo := newStubWorkspaceRepo()
	authz := NewAuthorizer(repo)

	ws, _ := repo.Create(context.Background(), "Team", 1)
	if _, err := repo.AddMember(context.Background(), ws.ID, 2, domain.RoleMember); err != nil {
		t.Fatalf("seed member: %v", err)
	}

	if _, err := authz.RequireOwner(context.Background(), 1, ws.ID); err != nil {
		t.Fatalf("RequireOwner returned error for owner: %v", err)
	}
	if _, err := authz.RequireOwner(context.Background(), 2, ws.ID); !errors.Is(err, domain.ErrOwnerOnly) {
		t.Fatalf("expected ErrOwnerOnly for plain member, got %v", err)
	}
	if _, err := authz.RequireOwner(context.Background(), 3, ws.ID); !errors.Is(err, domain.ErrNotMember) {
		t.Fatalf("expected ErrNotMember for outsider, got %v", err)
	}
}
