package ports

import (
	"context"

	"github.com/arabshield/platform-api/internal/core/domain"
)

// SettingsRepository defines persistence for the single global settings record.
type SettingsRepository interface {
	// Get retrieves the stored settings record. Returns
	// domain.ErrSettingsNotFound when no record has been stored yet.
	Get(ctx context.Context) (*domain.SystemSettings, error)

	// Merge applies a partial field update to the settings record, creating it
	// if absent. The store assigns the update timestamp at commit time and
	// records updatedBy alongside the merged fields.
	Merge(ctx context.Context, fields map[string]any, updatedBy string) error

	// Watch establishes a live subscription to the settings record. onNext is
	// invoked with the full record after every committed change; onError is
	// invoked if the stream fails. The returned unsubscribe func tears the
	// stream down; calling it more than once is a no-op.
	Watch(ctx context.Context, onNext func(domain.SystemSettings), onError func(error)) (func(), error)
}
