package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arabshield/platform-api/internal/api/metrics"
	"github.com/arabshield/platform-api/internal/core/domain"
)

// Require enforces that the caller's role is granted every one of actions,
// per the permission matrix. A missing role fails closed.
func Require(actions ...domain.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if !domain.CanAccessAll(domain.Role(role), actions...) {
				for _, a := range actions {
					if !domain.CanAccess(domain.Role(role), a) {
						metrics.AuthzDeniedTotal.WithLabelValues(string(a)).Inc()
					}
				}
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// RequireAdmin admits only admin-class roles (owner, admin).
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if !domain.IsAdminRole(domain.Role(role)) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
