package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arabshield/platform-api/internal/core/domain"
	"github.com/arabshield/platform-api/internal/core/ports"
)

const notificationLimit = 50

type NotificationHandler struct {
	repo ports.NotificationRepository
}

func NewNotificationHandler(repo ports.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{repo: repo}
}

type notificationListResponse struct {
	Notifications []*domain.Notification `json:"notifications"`
}

// List returns the caller's notifications, newest first.
//
// @Summary      List my notifications
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  notificationListResponse
// @Failure      401  {object}  map[string]string
// @Router       /notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	items, err := h.repo.ListByUser(c.Request().Context(), actor.ID, notificationLimit)
	if err != nil {
		return err
	}
	if items == nil {
		items = []*domain.Notification{}
	}

	return c.JSON(http.StatusOK, notificationListResponse{Notifications: items})
}

// MarkRead flags one of the caller's notifications as read.
//
// @Summary      Mark a notification read
// @Tags         notifications
// @Produce      json
// @Param        id  path  string  true  "Notification id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.repo.MarkRead(c.Request().Context(), actor.ID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
