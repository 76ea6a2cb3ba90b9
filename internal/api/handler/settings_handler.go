package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arabshield/platform-api/internal/api/metrics"
	"github.com/arabshield/platform-api/internal/core/domain"
	"github.com/arabshield/platform-api/internal/core/ports"
	"github.com/arabshield/platform-api/internal/core/service"
)

type SettingsHandler struct {
	settingsService ports.SettingsService
	watcher         *service.SettingsWatcher
}

func NewSettingsHandler(settingsService ports.SettingsService, watcher *service.SettingsWatcher) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, watcher: watcher}
}

type settingsResponse struct {
	Settings domain.SystemSettings `json:"settings"`
	State    string                `json:"state"`
}

type updateSettingRequest struct {
	Value any `json:"value"`
}

type updateSettingsRequest struct {
	Updates map[string]any `json:"updates" validate:"required,min=1"`
}

// Get returns the live settings snapshot and where it came from.
//
// @Summary      Current system settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  settingsResponse
// @Router       /settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	state := h.watcher.State()
	for _, s := range []service.WatcherState{service.StateLoading, service.StateLive, service.StateFallback} {
		v := 0.0
		if s == state {
			v = 1.0
		}
		metrics.SettingsWatcherState.WithLabelValues(s.String()).Set(v)
	}

	return c.JSON(http.StatusOK, settingsResponse{
		Settings: h.watcher.Settings(),
		State:    state.String(),
	})
}

// UpdateOne mutates a single settings field. Admin-class only.
//
// @Summary      Update one setting
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        key   path      string                true  "Settings field name"
// @Param        body  body      updateSettingRequest  true  "New value"
// @Success      204
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /settings/{key} [patch]
func (h *SettingsHandler) UpdateOne(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateSettingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	if err := h.settingsService.UpdateSetting(c.Request().Context(), actor, c.Param("key"), req.Value); err != nil {
		return err
	}

	metrics.SettingsUpdatesTotal.WithLabelValues("single").Inc()
	return c.NoContent(http.StatusNoContent)
}

// UpdateMany mutates several settings fields in one write. Admin-class only.
//
// @Summary      Update multiple settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body      updateSettingsRequest  true  "Field updates"
// @Success      204
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /settings [put]
func (h *SettingsHandler) UpdateMany(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := h.settingsService.UpdateSettings(c.Request().Context(), actor, req.Updates); err != nil {
		return err
	}

	metrics.SettingsUpdatesTotal.WithLabelValues("bulk").Inc()
	return c.NoContent(http.StatusNoContent)
}
