package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/arabshield/platform-api/internal/core/domain"
	"github.com/arabshield/platform-api/internal/core/ports"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

type AuditHandler struct {
	repo ports.AuditRepository
}

func NewAuditHandler(repo ports.AuditRepository) *AuditHandler {
	return &AuditHandler{repo: repo}
}

type auditListResponse struct {
	Entries []*domain.AuditLogEntry `json:"entries"`
}

// List returns recent audit entries, newest first. Requires view_all_data.
//
// @Summary      Recent audit log entries
// @Tags         audit
// @Produce      json
// @Param        limit  query     int  false  "Max entries (default 50, cap 200)"
// @Success      200    {object}  auditListResponse
// @Failure      403    {object}  map[string]string
// @Router       /audit [get]
func (h *AuditHandler) List(c echo.Context) error {
	limit := int64(defaultAuditLimit)
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 1 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "limit must be a positive integer"})
		}
		if n > maxAuditLimit {
			n = maxAuditLimit
		}
		limit = n
	}

	entries, err := h.repo.List(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []*domain.AuditLogEntry{}
	}

	return c.JSON(http.StatusOK, auditListResponse{Entries: entries})
}
