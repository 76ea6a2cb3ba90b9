package ports

import (
	"context"

	"github.com/arabshield/platform-api/internal/core/domain"
)

// ProfileRepository defines persistence for dashboard user profiles.
type ProfileRepository interface {
	// Get retrieves a profile by user id. Returns domain.ErrProfileNotFound
	// when absent.
	Get(ctx context.Context, userID string) (*domain.UserProfile, error)

	// Create stores a new profile. Fails if one already exists for the user.
	Create(ctx context.Context, profile *domain.UserProfile) error

	// SetRole updates the role field of an existing profile.
	SetRole(ctx context.Context, userID string, role domain.Role) error

	// ListAdmins returns every admin-class profile (owner, admin).
	ListAdmins(ctx context.Context) ([]*domain.UserProfile, error)
}
