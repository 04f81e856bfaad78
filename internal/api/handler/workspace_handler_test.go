package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/taskflow/workspace-api/internal/api/middleware"
	"github.com/taskflow/workspace-api/internal/core/domain"
)

type stubWorkspaceService struct {
	createFn func(ctx context.Context, callerID int64, name string) (*domain.Workspace, error)
	listFn   func(ctx context.Context, callerID int64) ([]domain.WorkspaceWithRole, error)
	detailFn func(ctx context.Context, callerID, workspaceID int64) (*domain.WorkspaceDetail, error)
	inviteFn func(ctx context.Context, callerID, workspaceID int64, email string) (*domain.Membership, error)
}

func (s *stubWorkspaceService) Create(ctx context.Context, callerID int64, name string) (*domain.Workspace, error) {
	return s.createFn(ctx, callerID, name)
}

func (s *stubWorkspaceService) List(ctx context.Context, callerID int64) ([]domain.WorkspaceWithRole, error) {
	return s.listFn(ctx, callerID)
}

func (s *stubWorkspaceService) Detail(ctx context.Context, callerID, workspaceID int64) (*domain.WorkspaceDetail, error) {
	return s.detailFn(ctx, callerID, workspaceID)
}

func (s *stubWorkspaceService) Invite(ctx context.Context, callerID, workspaceID int64, email string) (*domain.Membership, error) {
	return s.inviteFn(ctx, callerID, workspaceID, email)
}

func newAuthedTest(t *testing.T, method, target, body string, callerID int64) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxUserID, callerID)
	c.Set(middleware.CtxEmail, "caller@example.com")
	return e, c, rec
}

func TestWorkspaceHandler_Create_Success(t *testing.T) {
	stub := &stubWorkspaceService{
		createFn: func(ctx context.Context, callerID int64, name string) (*domain.Workspace, error) {
			if callerID != 7 || name != "Acme" {
				t.Fatalf("unexpected args: %d %s", callerID, name)
			}
			return &domain.Workspace{ID: 1, Name: name, CreatedBy: callerID}, nil
		},
	}
	handler := NewWorkspaceHandler(stub)

	_, c, rec := newAuthedTest(t, http.MethodPost, "/workspaces", `{"name":"Acme"}`, 7)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestWorkspaceHandler_Create_MissingIdentity(t *testing.T) {
	stub := &stubWorkspaceService{
		createFn: func(ctx context.Context, callerID int64, name string) (*domain.Workspace, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewWorkspaceHandler(stub)

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/workspaces", strings.NewReader(`{"name":"Acme"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestWorkspaceHandler_List(t *testing.T) {
	stub := &stubWorkspaceService{
		listFn: func(ctx context.Context, callerID int64) ([]domain.WorkspaceWithRole, error) {
			return []domain.WorkspaceWithRole{
				{Workspace: domain.Workspace{ID: 2, Name: "Beta"}, Role: domain.RoleOwner},
				{Workspace: domain.Workspace{ID: 1, Name: "Alpha"}, Role: domain.RoleMember},
			}, nil
		},
	}
	handler := NewWorkspaceHandler(stub)

	_, c, rec := newAuthedTest(t, http.MethodGet, "/workspaces", "", 7)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var list []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(list) != 2 || list[0]["role"] != "owner" || list[1]["role"] != "member" {
		t.Fatalf("unexpected payload: %+v", list)
	}
}

func TestWorkspaceHandler_Detail_BadID(t *testing.T) {
	stub := &stubWorkspaceService{
		detailFn: func(ctx context.Context, callerID, workspaceID int64) (*domain.WorkspaceDetail, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewWorkspaceHandler(stub)

	e, c, rec := newAuthedTest(t, http.MethodGet, "/workspaces/abc", "", 7)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := handler.Detail(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestWorkspaceHandler_Detail_Success(t *testing.T) {
	stub := &stubWorkspaceService{
		detailFn: func(ctx context.Context, callerID, workspaceID int64) (*domain.WorkspaceDetail, error) {
			if callerID != 7 || workspaceID != 5 {
				t.Fatalf("unexpected args: %d %d", callerID, workspaceID)
			}
			return &domain.WorkspaceDetail{
				Workspace: domain.Workspace{ID: 5, Name: "Acme"},
				Members: []domain.Member{
					{ID: 7, Name: "Caller", Email: "caller@example.com", Role: domain.RoleOwner},
				},
			}, nil
		},
	}
	handler := NewWorkspaceHandler(stub)

	_, c, rec := newAuthedTest(t, http.MethodGet, "/workspaces/5", "", 7)
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := handler.Detail(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	members, ok := resp["members"].([]any)
	if !ok || len(members) != 1 {
		t.Fatalf("expected members in response: %+v", resp)
	}
}

func TestWorkspaceHandler_Invite_Success(t *testing.T) {
	stub := &stubWorkspaceService{
		inviteFn: func(ctx context.Context, callerID, workspaceID int64, email string) (*domain.Membership, error) {
			if callerID != 7 || workspaceID != 5 || email != "new@example.com" {
				t.Fatalf("unexpected args: %d %d %s", callerID, workspaceID, email)
			}
			return &domain.Membership{WorkspaceID: 5, UserID: 9, Role: domain.RoleMember}, nil
		},
	}
	handler := NewWorkspaceHandler(stub)

	_, c, rec := newAuthedTest(t, http.MethodPost, "/workspaces/5/members", `{"email":"new@example.com"}`, 7)
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := handler.Invite(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestWorkspaceHandler_Invite_PropagatesError(t *testing.T) {
	stub := &stubWorkspaceService{
		inviteFn: func(ctx context.Context, callerID, workspaceID int64, email string) (*domain.Membership, error) {
			return nil, domain.ErrOwnerOnly
		},
	}
	handler := NewWorkspaceHandler(stub)

	_, c, _ := newAuthedTest(t, http.MethodPost, "/workspaces/5/members", `{"email":"new@example.com"}`, 7)
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := handler.Invite(c); err != domain.ErrOwnerOnly {
		t.Fatalf("expected ErrOwnerOnly to propagate, got %v", err)
	}
}
