package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/taskflow/workspace-api/internal/core/ports"
)

// Context keys under which the authenticated identity is stored. Handlers
// read them back through their ctxIdentity helper.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
)

// Auth verifies the bearer token and injects the caller's identity into the
// echo context. A request with no credential at all gets 401; a request with
// a credential that fails verification gets 403, regardless of whether the
// signature was bad, the structure malformed, or the token expired.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "no token provided")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "no token provided")
			}

			identity, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "invalid or expired token")
			}

			c.Set(CtxUserID, identity.UserID)
			c.Set(CtxEmail, identity.Email)

			return next(c)
		}
	}
}
