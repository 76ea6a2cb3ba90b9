package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/arabshield/platform-api/internal/core/ports"
)

const broadcastTimeout = 5 * time.Second

// NotificationEnqueuer hands notifications to the delivery dispatcher.
type NotificationEnqueuer interface {
	Enqueue(in ports.NotificationInput)
}

// MaintenanceBroadcaster notifies every admin-class profile when maintenance
// mode flips. Implements MaintenanceNotifier.
type MaintenanceBroadcaster struct {
	profiles ports.ProfileRepository
	queue    NotificationEnqueuer
	log      zerolog.Logger
}

func NewMaintenanceBroadcaster(profiles ports.ProfileRepository, queue NotificationEnqueuer, log zerolog.Logger) *MaintenanceBroadcaster {
	return &MaintenanceBroadcaster{profiles: profiles, queue: queue, log: log}
}

// MaintenanceChanged fans the flip out to all admins. Best-effort: a failed
// admin listing is logged and dropped, never propagated to the settings write.
func (b *MaintenanceBroadcaster) MaintenanceChanged(enabled bool) {
	ctx, cancel := context.WithTimeout(context.Background(), broadcastTimeout)
	defer cancel()

	admins, err := b.profiles.ListAdmins(ctx)
	if err != nil {
		b.log.Warn().Err(err).Msg("maintenance broadcast: listing admins failed")
		return
	}

	title := "Maintenance mode disabled"
	body := "The dashboard is open to all users again."
	if enabled {
		title = "Maintenance mode enabled"
		body = "Non-admin users are locked out of the dashboard until maintenance mode is turned off."
	}

	for _, admin := range admins {
		b.queue.Enqueue(ports.NotificationInput{
			UserID: admin.UserID,
			Title:  title,
			Body:   body,
		})
	}

	b.log.Info().
		Bool("enabled", enabled).
		Int("recipients", len(admins)).
		Msg("maintenance change broadcast")
}
