package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/arabshield/platform-api/internal/core/domain"
)

const testSecret = "test-secret"

type stubResolver struct {
	resolveFn func(ctx context.Context, userID string) (domain.Role, error)
}

func (r *stubResolver) ResolveRole(ctx context.Context, userID string) (domain.Role, error) {
	return r.resolveFn(ctx, userID)
}

func fixedRole(role domain.Role) *stubResolver {
	return &stubResolver{
		resolveFn: func(context.Context, string) (domain.Role, error) {
			return role, nil
		},
	}
}

func neverResolves(t *testing.T) *stubResolver {
	return &stubResolver{
		resolveFn: func(context.Context, string) (domain.Role, error) {
			t.Fatalf("rejected token must not resolve a role")
			return "", nil
		},
	}
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func invoke(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dash/profile", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return rec, c, handler(c)
}

func TestAuth_ValidToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "u1",
		"email": "u1@example.com",
		"role":  "member",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	rec, c, err := invoke(t, Auth(testSecret, fixedRole(domain.RoleMember)), "Bearer "+token)
	if err != nil {
		t.Fatalf("expected pass-through, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if c.Get("user_id") != "u1" || c.Get("email") != "u1@example.com" || c.Get("role") != "member" {
		t.Fatalf("claims not injected: user_id=%v email=%v role=%v",
			c.Get("user_id"), c.Get("email"), c.Get("role"))
	}
}

func TestAuth_RoleComesFromProfileNotToken(t *testing.T) {
	// Token minted while the user was an owner; the profile says client now.
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":  "u1",
		"role": "owner",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	resolver := &stubResolver{
		resolveFn: func(_ context.Context, userID string) (domain.Role, error) {
			if userID != "u1" {
				t.Fatalf("resolved wrong user: %s", userID)
			}
			return domain.RoleClient, nil
		},
	}

	_, c, err := invoke(t, Auth(testSecret, resolver), "Bearer "+token)
	if err != nil {
		t.Fatalf("expected pass-through, got %v", err)
	}
	if c.Get("role") != "client" {
		t.Fatalf("stale token claim won over live role: %v", c.Get("role"))
	}
}

func TestAuth_RoleChangeTakesEffectOnSameToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	current := domain.RoleOwner
	resolver := &stubResolver{
		resolveFn: func(context.Context, string) (domain.Role, error) {
			return current, nil
		},
	}

	e := echo.New()
	chain := Auth(testSecret, resolver)(RequireAdmin()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}))

	request := func() int {
		req := httptest.NewRequest(http.MethodPut, "/dash/settings", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if err := chain(c); err != nil {
			t.Fatalf("chain returned error: %v", err)
		}
		return rec.Code
	}

	if code := request(); code != http.StatusOK {
		t.Fatalf("owner request: expected 200, got %d", code)
	}

	// Demote the user; the same token must lose admin-class immediately.
	current = domain.RoleClient
	if code := request(); code != http.StatusForbidden {
		t.Fatalf("demoted request: expected 403, got %d", code)
	}
}

func TestAuth_UnknownUserGetsEmptyRole(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "ghost",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, c, err := invoke(t, Auth(testSecret, fixedRole("")), "Bearer "+token)
	if err != nil {
		t.Fatalf("expected pass-through, got %v", err)
	}
	if c.Get("role") != "" {
		t.Fatalf("unknown user must carry the empty role, got %v", c.Get("role"))
	}
}

func TestAuth_ResolverFailurePropagates(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	resolver := &stubResolver{
		resolveFn: func(context.Context, string) (domain.Role, error) {
			return "", context.DeadlineExceeded
		},
	}

	_, _, err := invoke(t, Auth(testSecret, resolver), "Bearer "+token)
	if err == nil {
		t.Fatalf("resolver failure must surface, got nil")
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, _, err := invoke(t, Auth(testSecret, neverResolves(t)), "")
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	for _, header := range []string{"Bearer", "Basic abc", "garbage"} {
		_, _, err := invoke(t, Auth(testSecret, neverResolves(t)), header)
		httpErr, ok := err.(*echo.HTTPError)
		if !ok || httpErr.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %v", header, err)
		}
	}
}

func TestAuth_WrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, _, err := invoke(t, Auth(testSecret, neverResolves(t)), "Bearer "+token)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	_, _, err := invoke(t, Auth(testSecret, neverResolves(t)), "Bearer "+token)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %v", err)
	}
}
