package domain

import "time"

// FieldChange captures the before/after values of a single mutated field.
type FieldChange struct {
	PreviousValue any `json:"previousValue" bson:"previousValue"`
	NewValue      any `json:"newValue" bson:"newValue"`
}

// AuditLogEntry is an immutable record of a privileged mutation. Entries are
// append-only: this subsystem never updates or deletes them. Field names are a
// persisted-state contract and must not be renamed.
type AuditLogEntry struct {
	ID        string                 `json:"id,omitempty" bson:"_id,omitempty"`
	Action    string                 `json:"action" bson:"action"`
	UserID    string                 `json:"userId" bson:"userId"`
	UserEmail string                 `json:"userEmail" bson:"userEmail"`
	Timestamp time.Time              `json:"timestamp" bson:"timestamp"`
	Target    string                 `json:"target" bson:"target"`
	Changes   map[string]FieldChange `json:"changes" bson:"changes"`
	IP        string                 `json:"ip,omitempty" bson:"ip,omitempty"`
	UserAgent string                 `json:"userAgent,omitempty" bson:"userAgent,omitempty"`
}

// Audit action names.
const (
	AuditActionSettingsUpdate = "settings_update"
	AuditActionRoleChange     = "role_change"
)

// Actor identifies who performed a privileged mutation, plus request metadata
// recorded in the audit trail.
type Actor struct {
	ID        string
	Email     string
	Role      Role
	IP        string
	UserAgent string
}
