package ports

import (
	"context"

	"github.com/arabshield/platform-api/internal/core/domain"
)

// AuditRepository defines persistence for the append-only audit trail.
// Entries are never updated or deleted.
type AuditRepository interface {
	// Append stores one entry and returns its generated id.
	Append(ctx context.Context, entry *domain.AuditLogEntry) (string, error)

	// List returns the most recent entries, newest first, up to limit.
	List(ctx context.Context, limit int64) ([]*domain.AuditLogEntry, error)
}
