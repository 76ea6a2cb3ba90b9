// Package metrics defines all custom Prometheus metrics for the ArabShield
// platform API. It is the single source of truth for metric names, labels,
// and help strings. promauto registers everything with the default registry
// at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "arabshield"

// ── Settings metrics ──────────────────────────────────────────────────────────

// SettingsUpdatesTotal counts committed settings mutations.
// Label:
//   - kind: "single" (one field) or "bulk"
var SettingsUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "settings_updates_total",
		Help:      "Total number of settings mutations committed.",
	},
	[]string{"kind"},
)

// SettingsWatcherState tracks the settings watcher state as a gauge.
// Label:
//   - state: "loading", "live", or "fallback" (the active state reads 1)
var SettingsWatcherState = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "settings_watcher_state",
		Help:      "Current settings watcher state (1 for the active state, 0 otherwise).",
	},
	[]string{"state"},
)

// ── Authorization metrics ─────────────────────────────────────────────────────

// AuthzDeniedTotal counts rejected permission checks.
// Label:
//   - action: the capability that was denied (e.g. "manage_users")
var AuthzDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denied_total",
		Help:      "Total number of requests denied by the permission matrix.",
	},
	[]string{"action"},
)

// MaintenanceBlockedTotal counts requests turned away by the maintenance gate.
var MaintenanceBlockedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "maintenance_blocked_total",
		Help:      "Total number of non-admin requests blocked while maintenance mode was active.",
	},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditEntriesTotal counts appended audit log entries.
// Label:
//   - action: the audited action ("settings_update", "role_change")
var AuditEntriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_entries_total",
		Help:      "Total number of audit log entries appended.",
	},
	[]string{"action"},
)
