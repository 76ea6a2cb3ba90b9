package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/arabshield/platform-api/internal/api/metrics"
	"github.com/arabshield/platform-api/internal/core/domain"
	"github.com/arabshield/platform-api/internal/core/ports"
)

// RoleCache abstracts the short-TTL role lookup cache (Redis).
type RoleCache interface {
	GetRole(ctx context.Context, userID string) (domain.Role, bool, error)
	SetRole(ctx context.Context, userID string, role domain.Role) error
	Invalidate(ctx context.Context, userID string) error
}

// SettingsSource exposes the current settings snapshot. Satisfied by
// SettingsWatcher.
type SettingsSource interface {
	Settings() domain.SystemSettings
}

type profileService struct {
	repo     ports.ProfileRepository
	audit    ports.AuditRepository
	cache    RoleCache
	settings SettingsSource
	log      zerolog.Logger
}

// NewProfileService returns a ProfileService implementation. cache may be nil
// to disable role caching.
func NewProfileService(
	repo ports.ProfileRepository,
	audit ports.AuditRepository,
	cache RoleCache,
	settings SettingsSource,
	log zerolog.Logger,
) ports.ProfileService {
	return &profileService{
		repo:     repo,
		audit:    audit,
		cache:    cache,
		settings: settings,
		log:      log,
	}
}

// EnsureProfile fetches the user's profile, creating it on first verified
// authentication. The new profile's role comes from the live defaultUserRole
// setting.
func (s *profileService) EnsureProfile(ctx context.Context, userID, email, displayName string) (*domain.UserProfile, error) {
	profile, err := s.repo.Get(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, err
	}

	profile = &domain.UserProfile{
		UserID:      userID,
		Role:        s.settings.Settings().DefaultUserRole,
		DisplayName: displayName,
		Email:       email,
		CreatedAt:   time.Now().UTC(),
	}
	if createErr := s.repo.Create(ctx, profile); createErr != nil {
		// Lost a creation race: the profile exists now, read it back.
		if existing, getErr := s.repo.Get(ctx, userID); getErr == nil {
			return existing, nil
		}
		return nil, createErr
	}

	s.log.Info().
		Str("user_id", userID).
		Str("role", string(profile.Role)).
		Msg("profile created")

	return profile, nil
}

// ResolveRole returns the user's current role, consulting the cache first.
// An unknown user resolves to the empty role, which fails every permission
// check. Cache failures degrade to a repository read.
func (s *profileService) ResolveRole(ctx context.Context, userID string) (domain.Role, error) {
	if s.cache != nil {
		role, ok, err := s.cache.GetRole(ctx, userID)
		if err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("role cache read failed")
		} else if ok {
			return role, nil
		}
	}

	profile, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return "", nil
		}
		return "", err
	}

	if s.cache != nil {
		if err := s.cache.SetRole(ctx, userID, profile.Role); err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("role cache write failed")
		}
	}
	return profile.Role, nil
}

// ChangeRole sets a user's role. Requires the manage_users capability;
// the change is audited and the cached role invalidated.
func (s *profileService) ChangeRole(ctx context.Context, actor domain.Actor, userID string, role domain.Role) error {
	if !domain.CanAccess(actor.Role, domain.ActionManageUsers) {
		return domain.ErrNotAuthorized
	}
	if !domain.ValidRole(role) {
		return domain.ErrInvalidRole
	}

	profile, err := s.repo.Get(ctx, userID)
	if err != nil {
		return err
	}
	prev := profile.Role

	if err := s.repo.SetRole(ctx, userID, role); err != nil {
		return err
	}

	entry := &domain.AuditLogEntry{
		Action:    domain.AuditActionRoleChange,
		UserID:    actor.ID,
		UserEmail: actor.Email,
		Timestamp: time.Now().UTC(),
		Target:    userID,
		Changes: map[string]domain.FieldChange{
			"role": {PreviousValue: string(prev), NewValue: string(role)},
		},
		IP:        actor.IP,
		UserAgent: actor.UserAgent,
	}
	if _, err := s.audit.Append(ctx, entry); err != nil {
		s.log.Warn().Err(err).Str("actor", actor.ID).Msg("failed to append audit entry")
	} else {
		metrics.AuditEntriesTotal.WithLabelValues(entry.Action).Inc()
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, userID); err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("role cache invalidation failed")
		}
	}

	s.log.Info().
		Str("user_id", userID).
		Str("from", string(prev)).
		Str("to", string(role)).
		Str("actor", actor.ID).
		Msg("role changed")

	return nil
}
