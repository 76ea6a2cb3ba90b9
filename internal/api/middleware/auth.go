package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/arabshield/platform-api/internal/core/domain"
)

// RoleResolver looks up a user's current role. Satisfied by
// ports.ProfileService.
type RoleResolver interface {
	ResolveRole(ctx context.Context, userID string) (domain.Role, error)
}

// Auth validates the JWT and injects claims into context. The token carries
// identity only; authority is resolved live through roles on every request,
// so a role change takes effect immediately instead of at token expiry. An
// unknown user resolves to the empty role, which fails every permission check.
func Auth(jwtSecret string, roles RoleResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			userID, _ := claims["sub"].(string)
			role, err := roles.ResolveRole(c.Request().Context(), userID)
			if err != nil {
				return err
			}

			c.Set("user_id", userID)
			c.Set("email", claims["email"])
			c.Set("role", string(role))

			return next(c)
		}
	}
}
