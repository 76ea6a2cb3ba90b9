package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arabshield/platform-api/internal/api/metrics"
	"github.com/arabshield/platform-api/internal/core/domain"
)

// SettingsSource exposes the live settings snapshot.
type SettingsSource interface {
	Settings() domain.SystemSettings
}

// maintenanceResponse is returned to callers locked out by the gate.
type maintenanceResponse struct {
	Error     string `json:"error"`
	MessageEN string `json:"message_en"`
	MessageAR string `json:"message_ar"`
}

// Maintenance blocks non-admin roles while maintenance mode is active.
// Admin-class roles pass through with a persistent notice header. Must run
// after Auth so the role claim is in context.
func Maintenance(source SettingsSource) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			settings := source.Settings()
			role, _ := c.Get("role").(string)

			if domain.Blocked(settings, domain.Role(role)) {
				metrics.MaintenanceBlockedTotal.Inc()
				return c.JSON(http.StatusServiceUnavailable, maintenanceResponse{
					Error:     "maintenance",
					MessageEN: "The dashboard is under maintenance. Please check back soon.",
					MessageAR: "لوحة التحكم قيد الصيانة حالياً. يرجى المحاولة لاحقاً.",
				})
			}

			if settings.MaintenanceMode {
				c.Response().Header().Set("X-Maintenance-Mode", "active")
			}
			return next(c)
		}
	}
}
