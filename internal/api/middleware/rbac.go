package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/civicvote/voting-system/internal/core/ports"
)

// RequireAdmin lets the request through only when the authenticated user is an
// admin according to the user directory. Token claims are not trusted for the
// role, and any lookup failure is treated as "not admin".
func RequireAdmin(checker ports.AdminChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get(ContextKeyUserID).(string)
			if !checker.IsAdmin(c.Request().Context(), userID) {
				return echo.NewHTTPError(http.StatusForbidden, "user does not have admin role")
			}
			return next(c)
		}
	}
}
