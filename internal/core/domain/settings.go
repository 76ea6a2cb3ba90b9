package domain

// SettingsID is the fixed document id of the single global settings record.
const SettingsID = "global"

// SystemSettings is the single global configuration record. Field names are a
// persisted-state contract shared with the dashboard frontend and must not be
// renamed.
type SystemSettings struct {
	SiteName                  string `json:"siteName" bson:"siteName"`
	MaintenanceMode           bool   `json:"maintenanceMode" bson:"maintenanceMode"`
	AllowNewRegistrations     bool   `json:"allowNewRegistrations" bson:"allowNewRegistrations"`
	DefaultUserRole           Role   `json:"defaultUserRole" bson:"defaultUserRole"`
	EmailNotificationsEnabled bool   `json:"emailNotificationsEnabled" bson:"emailNotificationsEnabled"`
	MaxProjectsPerUser        int    `json:"maxProjectsPerUser" bson:"maxProjectsPerUser"`
}

// Settings field keys, as persisted.
const (
	SettingSiteName                  = "siteName"
	SettingMaintenanceMode           = "maintenanceMode"
	SettingAllowNewRegistrations     = "allowNewRegistrations"
	SettingDefaultUserRole           = "defaultUserRole"
	SettingEmailNotificationsEnabled = "emailNotificationsEnabled"
	SettingMaxProjectsPerUser        = "maxProjectsPerUser"
)

// DefaultSettings returns the hard-coded settings used when no record has been
// stored yet, or when the live subscription fails.
func DefaultSettings() SystemSettings {
	return SystemSettings{
		SiteName:                  "ArabShield",
		MaintenanceMode:           false,
		AllowNewRegistrations:     true,
		DefaultUserRole:           RoleClient,
		EmailNotificationsEnabled: false,
		MaxProjectsPerUser:        10,
	}
}

// Field returns the current value of the named settings field, and whether the
// key is part of the settings contract.
func (s SystemSettings) Field(key string) (any, bool) {
	switch key {
	case SettingSiteName:
		return s.SiteName, true
	case SettingMaintenanceMode:
		return s.MaintenanceMode, true
	case SettingAllowNewRegistrations:
		return s.AllowNewRegistrations, true
	case SettingDefaultUserRole:
		return string(s.DefaultUserRole), true
	case SettingEmailNotificationsEnabled:
		return s.EmailNotificationsEnabled, true
	case SettingMaxProjectsPerUser:
		return s.MaxProjectsPerUser, true
	}
	return nil, false
}

// Blocked is the maintenance gate decision: non-admin roles are locked out of
// protected surfaces while maintenance mode is active. Admin-class roles pass
// and instead see a persistent maintenance notice.
func Blocked(settings SystemSettings, role Role) bool {
	return settings.MaintenanceMode && !IsAdminRole(role)
}

// RegistrationAllowed reports whether new-account creation is open. Independent
// of role.
func RegistrationAllowed(settings SystemSettings) bool {
	return settings.AllowNewRegistrations
}
