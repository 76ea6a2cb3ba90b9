package ports

import (
	"context"

	"github.com/arabshield/platform-api/internal/core/domain"
)

// NotificationRepository defines persistence for dashboard notifications.
type NotificationRepository interface {
	Insert(ctx context.Context, n *domain.Notification) error
	// ListByUser returns the user's notifications, newest first, up to limit.
	ListByUser(ctx context.Context, userID string, limit int64) ([]*domain.Notification, error)
	// MarkRead flags one of the user's notifications as read.
	MarkRead(ctx context.Context, userID, notificationID string) error
}

// NotificationInput is the DTO handed to the delivery dispatcher.
type NotificationInput struct {
	UserID string
	Title  string
	Body   string
}

// NotificationService delivers a notification to a single user.
type NotificationService interface {
	Deliver(ctx context.Context, in NotificationInput) error
}
