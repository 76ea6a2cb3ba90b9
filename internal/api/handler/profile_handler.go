package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arabshield/platform-api/internal/core/domain"
	"github.com/arabshield/platform-api/internal/core/ports"
)

type ProfileHandler struct {
	profiles ports.ProfileService
}

func NewProfileHandler(profiles ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

type profileResponse struct {
	Profile        *domain.UserProfile `json:"profile"`
	AllowedActions []domain.Action     `json:"allowed_actions"`
}

type changeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=owner admin member client"`
}

// Me returns the caller's profile, creating it on first verified login.
//
// @Summary      Current user profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  map[string]string
// @Router       /profile [get]
func (h *ProfileHandler) Me(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	profile, err := h.profiles.EnsureProfile(c.Request().Context(), actor.ID, actor.Email, "")
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{
		Profile:        profile,
		AllowedActions: domain.AllowedActions(profile.Role),
	})
}

// ChangeRole sets another user's role. Requires manage_users.
//
// @Summary      Change a user's role
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User id"
// @Param        body  body      changeRoleRequest  true  "New role"
// @Success      204
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /users/{id}/role [put]
func (h *ProfileHandler) ChangeRole(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req changeRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := h.profiles.ChangeRole(c.Request().Context(), actor, c.Param("id"), domain.Role(req.Role)); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
