package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskflow/workspace-api/internal/api/middleware"
	"github.com/taskflow/workspace-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware. A
// non-positive user id means the middleware did not run or stored garbage;
// the request cannot proceed as any caller.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	userID, _ := c.Get(middleware.CtxUserID).(int64)
	if userID <= 0 {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	email, _ := c.Get(middleware.CtxEmail).(string)
	return &domain.Identity{UserID: userID, Email: email}, nil
}
