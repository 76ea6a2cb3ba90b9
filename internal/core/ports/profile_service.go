package ports

import (
	"context"

	"github.com/arabshield/platform-api/internal/core/domain"
)

// ProfileService resolves roles and manages the profile lifecycle.
type ProfileService interface {
	// EnsureProfile returns the profile for userID, creating it on first
	// verified authentication with the configured default role. Creation
	// happens at most once per user.
	EnsureProfile(ctx context.Context, userID, email, displayName string) (*domain.UserProfile, error)

	// ResolveRole returns the user's current role. An unknown user resolves
	// to the empty role, which fails every permission check.
	ResolveRole(ctx context.Context, userID string) (domain.Role, error)

	// ChangeRole sets a user's role. Requires actor to hold manage_users;
	// the change is audited and the role cache invalidated.
	ChangeRole(ctx context.Context, actor domain.Actor, userID string, role domain.Role) error
}
