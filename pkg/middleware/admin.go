package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crewboard/crewboard-back/pkg/auth"
)

// RequireAdmin gates admin-only routes on the role claim. It must run
// after JWTAuth.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role != auth.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}
			return next(c)
		}
	}
}
