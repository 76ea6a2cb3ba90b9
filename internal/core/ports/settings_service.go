package ports

import (
	"context"

	"github.com/arabshield/platform-api/internal/core/domain"
)

// SettingsService gates mutations of the global settings record behind the
// admin-class check and writes the audit trail.
type SettingsService interface {
	// UpdateSetting mutates a single settings field. Rejects with
	// domain.ErrNotAuthorized unless actor.Role is admin-class.
	UpdateSetting(ctx context.Context, actor domain.Actor, key string, value any) error

	// UpdateSettings mutates multiple fields in one merge write, auditing only
	// the fields whose value actually changed.
	UpdateSettings(ctx context.Context, actor domain.Actor, updates map[string]any) error
}
