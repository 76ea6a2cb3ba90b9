package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/arabshield/platform-api/internal/api/metrics"
	"github.com/arabshield/platform-api/internal/core/domain"
	"github.com/arabshield/platform-api/internal/core/ports"
)

// MaintenanceNotifier fans a maintenance-mode flip out to interested users.
// Delivery is best-effort and must not block the settings write.
type MaintenanceNotifier interface {
	MaintenanceChanged(enabled bool)
}

type settingsService struct {
	repo     ports.SettingsRepository
	audit    ports.AuditRepository
	notifier MaintenanceNotifier // optional
	log      zerolog.Logger
}

// NewSettingsService returns a SettingsService implementation. notifier may be
// nil when maintenance broadcasts are not wanted (e.g. in tests).
func NewSettingsService(
	repo ports.SettingsRepository,
	audit ports.AuditRepository,
	notifier MaintenanceNotifier,
	log zerolog.Logger,
) ports.SettingsService {
	return &settingsService{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
		log:      log,
	}
}

// UpdateSetting mutates a single settings field.
func (s *settingsService) UpdateSetting(ctx context.Context, actor domain.Actor, key string, value any) error {
	if !domain.IsAdminRole(actor.Role) {
		return domain.ErrNotAuthorized
	}

	val, err := normalizeSettingValue(key, value)
	if err != nil {
		return err
	}

	current, err := s.currentSettings(ctx)
	if err != nil {
		return err
	}
	prev, _ := current.Field(key)

	if err := s.repo.Merge(ctx, map[string]any{key: val}, actor.ID); err != nil {
		s.log.Error().Err(err).Str("key", key).Str("actor", actor.ID).Msg("settings merge failed")
		return domain.ErrSettingsUpdateFailed
	}

	s.appendAudit(ctx, actor, map[string]domain.FieldChange{
		key: {PreviousValue: prev, NewValue: val},
	})

	if key == domain.SettingMaintenanceMode && prev != val {
		s.notifyMaintenance(val == true)
	}

	s.log.Info().
		Str("key", key).
		Str("actor", actor.ID).
		Msg("setting updated")

	return nil
}

// UpdateSettings merges multiple fields in one write and audits only the
// fields whose value actually changed. An update where nothing differs still
// issues the merge but appends no audit entry.
func (s *settingsService) UpdateSettings(ctx context.Context, actor domain.Actor, updates map[string]any) error {
	if !domain.IsAdminRole(actor.Role) {
		return domain.ErrNotAuthorized
	}

	fields := make(map[string]any, len(updates))
	for key, value := range updates {
		val, err := normalizeSettingValue(key, value)
		if err != nil {
			return err
		}
		fields[key] = val
	}

	current, err := s.currentSettings(ctx)
	if err != nil {
		return err
	}

	changes := make(map[string]domain.FieldChange)
	for key, val := range fields {
		prev, _ := current.Field(key)
		if prev != val {
			changes[key] = domain.FieldChange{PreviousValue: prev, NewValue: val}
		}
	}

	if err := s.repo.Merge(ctx, fields, actor.ID); err != nil {
		s.log.Error().Err(err).Str("actor", actor.ID).Msg("settings merge failed")
		return domain.ErrSettingsUpdateFailed
	}

	if len(changes) == 0 {
		s.log.Debug().Str("actor", actor.ID).Msg("settings update changed nothing, skipping audit")
		return nil
	}

	s.appendAudit(ctx, actor, changes)

	if ch, ok := changes[domain.SettingMaintenanceMode]; ok {
		s.notifyMaintenance(ch.NewValue == true)
	}

	s.log.Info().
		Int("fields", len(changes)).
		Str("actor", actor.ID).
		Msg("settings updated")

	return nil
}

// currentSettings reads the stored record, falling back to defaults when no
// record exists yet. Store failures surface as the generic update error.
func (s *settingsService) currentSettings(ctx context.Context) (domain.SystemSettings, error) {
	current, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrSettingsNotFound) {
			return domain.DefaultSettings(), nil
		}
		s.log.Error().Err(err).Msg("settings read failed")
		return domain.SystemSettings{}, domain.ErrSettingsUpdateFailed
	}
	return *current, nil
}

// appendAudit writes one audit entry per mutation call. Audit failures are
// logged but do not fail the mutation.
func (s *settingsService) appendAudit(ctx context.Context, actor domain.Actor, changes map[string]domain.FieldChange) {
	entry := &domain.AuditLogEntry{
		Action:    domain.AuditActionSettingsUpdate,
		UserID:    actor.ID,
		UserEmail: actor.Email,
		Timestamp: time.Now().UTC(),
		Target:    domain.SettingsID,
		Changes:   changes,
		IP:        actor.IP,
		UserAgent: actor.UserAgent,
	}
	if _, err := s.audit.Append(ctx, entry); err != nil {
		s.log.Warn().Err(err).Str("actor", actor.ID).Msg("failed to append audit entry")
		return
	}
	metrics.AuditEntriesTotal.WithLabelValues(entry.Action).Inc()
}

func (s *settingsService) notifyMaintenance(enabled bool) {
	if s.notifier == nil {
		return
	}
	s.notifier.MaintenanceChanged(enabled)
}

// normalizeSettingValue validates key against the settings contract and
// coerces value to the field's canonical type. JSON decoding hands numbers
// over as float64, so integral floats are accepted for integer fields.
func normalizeSettingValue(key string, value any) (any, error) {
	switch key {
	case domain.SettingSiteName:
		v, ok := value.(string)
		if !ok || v == "" {
			return nil, fmt.Errorf("%w: %s must be a non-empty string", domain.ErrInvalidSetting, key)
		}
		return v, nil

	case domain.SettingMaintenanceMode,
		domain.SettingAllowNewRegistrations,
		domain.SettingEmailNotificationsEnabled:
		v, ok := value.(bool)
		if !ok {
			return nil, fmt.Errorf("%w: %s must be a boolean", domain.ErrInvalidSetting, key)
		}
		return v, nil

	case domain.SettingDefaultUserRole:
		v, ok := value.(string)
		if !ok || !domain.ValidRole(domain.Role(v)) {
			return nil, fmt.Errorf("%w: %s must be a valid role", domain.ErrInvalidSetting, key)
		}
		return v, nil

	case domain.SettingMaxProjectsPerUser:
		switch v := value.(type) {
		case int:
			if v < 1 {
				return nil, fmt.Errorf("%w: %s must be positive", domain.ErrInvalidSetting, key)
			}
			return v, nil
		case float64:
			if v != float64(int(v)) || v < 1 {
				return nil, fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidSetting, key)
			}
			return int(v), nil
		default:
			return nil, fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidSetting, key)
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrUnknownSettingKey, key)
}
