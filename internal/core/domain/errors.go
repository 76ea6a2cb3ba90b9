package domain

import "errors"

var (
	// ErrNotAuthorized is returned when the caller's role fails the
	// admin-class check on a privileged mutation. Never retried.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrSettingsUpdateFailed wraps persistence failures on settings
	// mutations. The original cause is logged, not surfaced to callers.
	ErrSettingsUpdateFailed = errors.New("settings update failed")

	ErrUnknownSettingKey    = errors.New("unknown setting key")
	ErrInvalidSetting       = errors.New("invalid setting value")
	ErrRegistrationClosed   = errors.New("registrations are closed")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidRole          = errors.New("invalid role")
	ErrUserExists           = errors.New("user already exists")
	ErrUserNotFound         = errors.New("user not found")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrSettingsNotFound     = errors.New("settings record not found")
	ErrNotificationNotFound = errors.New("notification not found")
)
