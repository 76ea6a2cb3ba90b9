package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arabshield/platform-api/internal/core/domain"
)

// ctxActor extracts the identity injected by the Auth middleware (the role is
// resolved live from the profile, not read off the token) and bundles it with
// request metadata for audit logging. The role must be present: its absence
// means the middleware did not run or the user has no profile.
func ctxActor(c echo.Context) (domain.Actor, error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return domain.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ := c.Get("user_id").(string)
	email, _ := c.Get("email").(string)

	return domain.Actor{
		ID:        userID,
		Email:     email,
		Role:      domain.Role(role),
		IP:        c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	}, nil
}
