package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/taskflow/workspace-api/internal/api/metrics"
	"github.com/taskflow/workspace-api/internal/core/domain"
	"github.com/taskflow/workspace-api/internal/core/ports"
)

// WorkspaceHandler handles HTTP requests for workspace operations. Every
// route behind it runs after the Auth middleware, so the caller identity is
// always present in the context.
type WorkspaceHandler struct {
	service ports.WorkspaceService
}

func NewWorkspaceHandler(service ports.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{service: service}
}

// --- Request types ---

type createWorkspaceRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type inviteMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Create makes a new workspace owned by the caller.
//
// @Summary      Create a workspace
// @Tags         workspaces
// @Accept       json
// @Produce      json
// @Param        body  body      createWorkspaceRequest  true  "Workspace details"
// @Success      201   {object}  domain.Workspace
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /workspaces [post]
// @Security     BearerAuth
func (h *WorkspaceHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createWorkspaceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ws, err := h.service.Create(c.Request().Context(), identity.UserID, req.Name)
	if err != nil {
		return err
	}

	metrics.WorkspacesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, ws)
}

// List returns every workspace the caller belongs to, with their role.
//
// @Summary      List the caller's workspaces
// @Tags         workspaces
// @Produce      json
// @Success      200  {array}   domain.WorkspaceWithRole
// @Failure      401  {object}  map[string]string
// @Router       /workspaces [get]
// @Security     BearerAuth
func (h *WorkspaceHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	list, err := h.service.List(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Detail returns a workspace and its members. Non-members get 403 whether or
// not the workspace exists.
//
// @Summary      Get a workspace with its members
// @Tags         workspaces
// @Produce      json
// @Param        id   path      int  true  "Workspace ID"
// @Success      200  {object}  domain.WorkspaceDetail
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /workspaces/{id} [get]
// @Security     BearerAuth
func (h *WorkspaceHandler) Detail(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	workspaceID, err := workspaceParam(c)
	if err != nil {
		return err
	}

	detail, err := h.service.Detail(c.Request().Context(), identity.UserID, workspaceID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

// Invite adds a registered user to the workspace (owner only).
//
// @Summary      Invite a member
// @Tags         workspaces
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Workspace ID"
// @Param        body  body      inviteMemberRequest  true  "Invitee email"
// @Success      201   {object}  domain.Membership
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /workspaces/{id}/members [post]
// @Security     BearerAuth
func (h *WorkspaceHandler) Invite(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	workspaceID, err := workspaceParam(c)
	if err != nil {
		return err
	}

	var req inviteMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.InvitesTotal.WithLabelValues("invalid").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	membership, err := h.service.Invite(c.Request().Context(), identity.UserID, workspaceID, req.Email)
	if err != nil {
		metrics.InvitesTotal.WithLabelValues(inviteResult(err)).Inc()
		return err
	}

	metrics.InvitesTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusCreated, membership)
}

// workspaceParam parses the :id path segment. A non-numeric id can never
// reference a workspace, so it is reported as a bad request before any
// authorization check.
func workspaceParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid workspace id")
	}
	return id, nil
}

func inviteResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotMember), errors.Is(err, domain.ErrOwnerOnly):
		return "forbidden"
	case errors.Is(err, domain.ErrUserNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrAlreadyMember):
		return "conflict"
	case errors.Is(err, domain.ErrValidation):
		return "invalid"
	default:
		return "error"
	}
}
