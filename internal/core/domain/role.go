package domain

// Role is the authorization level assigned to a user profile.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
	RoleClient Role = "client"
)

// Action is a named capability over a resource kind.
type Action string

const (
	ActionReadProjects    Action = "read_projects"
	ActionWriteProjects   Action = "write_projects"
	ActionDeleteProjects  Action = "delete_projects"
	ActionReadTasks       Action = "read_tasks"
	ActionWriteTasks      Action = "write_tasks"
	ActionDeleteTasks     Action = "delete_tasks"
	ActionReadInvoices    Action = "read_invoices"
	ActionWriteInvoices   Action = "write_invoices"
	ActionDeleteInvoices  Action = "delete_invoices"
	ActionReadDocuments   Action = "read_documents"
	ActionWriteDocuments  Action = "write_documents"
	ActionDeleteDocuments Action = "delete_documents"
	ActionReadTickets     Action = "read_tickets"
	ActionWriteTickets    Action = "write_tickets"
	ActionDeleteTickets   Action = "delete_tickets"
	ActionReadRatings     Action = "read_ratings"
	ActionWriteRatings    Action = "write_ratings"
	ActionDeleteRatings   Action = "delete_ratings"
	ActionManageUsers     Action = "manage_users"
	ActionViewAllData     Action = "view_all_data"
)

// allActions lists every capability, granted wholesale to admin-class roles.
var allActions = []Action{
	ActionReadProjects, ActionWriteProjects, ActionDeleteProjects,
	ActionReadTasks, ActionWriteTasks, ActionDeleteTasks,
	ActionReadInvoices, ActionWriteInvoices, ActionDeleteInvoices,
	ActionReadDocuments, ActionWriteDocuments, ActionDeleteDocuments,
	ActionReadTickets, ActionWriteTickets, ActionDeleteTickets,
	ActionReadRatings, ActionWriteRatings, ActionDeleteRatings,
	ActionManageUsers, ActionViewAllData,
}

// permissionMatrix is the fixed role → action policy table. It is configuration,
// never mutated at runtime. RoleAdmin carries the same set as RoleOwner: both are
// admin-class.
var permissionMatrix = map[Role][]Action{
	RoleOwner: allActions,
	RoleAdmin: allActions,
	RoleMember: {
		ActionReadProjects, ActionWriteProjects,
		ActionReadTasks, ActionWriteTasks,
		ActionReadInvoices,
		ActionReadDocuments, ActionWriteDocuments,
		ActionReadTickets, ActionWriteTickets,
		ActionReadRatings, ActionWriteRatings,
	},
	RoleClient: {
		ActionReadProjects,
		ActionReadTasks,
		ActionReadInvoices,
		ActionReadDocuments,
		ActionReadTickets, ActionWriteTickets, ActionDeleteTickets,
		ActionReadRatings, ActionWriteRatings, ActionDeleteRatings,
	},
}

// lookup is the matrix flattened into sets for O(1) checks, built once at init.
var lookup = func() map[Role]map[Action]struct{} {
	m := make(map[Role]map[Action]struct{}, len(permissionMatrix))
	for role, actions := range permissionMatrix {
		set := make(map[Action]struct{}, len(actions))
		for _, a := range actions {
			set[a] = struct{}{}
		}
		m[role] = set
	}
	return m
}()

// CanAccess reports whether role is granted action. An empty or unrecognised
// role fails every check (fail-closed).
func CanAccess(role Role, action Action) bool {
	set, ok := lookup[role]
	if !ok {
		return false
	}
	_, ok = set[action]
	return ok
}

// CanAccessAll reports whether role is granted every one of actions.
func CanAccessAll(role Role, actions ...Action) bool {
	for _, a := range actions {
		if !CanAccess(role, a) {
			return false
		}
	}
	return true
}

// CanAccessAny reports whether role is granted at least one of actions.
func CanAccessAny(role Role, actions ...Action) bool {
	for _, a := range actions {
		if CanAccess(role, a) {
			return true
		}
	}
	return false
}

// AllowedActions returns the fixed action set for role, empty for an
// unrecognised or absent role. The returned slice is a copy.
func AllowedActions(role Role) []Action {
	actions, ok := permissionMatrix[role]
	if !ok {
		return nil
	}
	out := make([]Action, len(actions))
	copy(out, actions)
	return out
}

// IsAdminRole reports whether role is admin-class (owner or admin). Used for
// UI gating and for settings mutations.
func IsAdminRole(role Role) bool {
	return role == RoleOwner || role == RoleAdmin
}

// ValidRole reports whether role is one of the canonical enumeration values.
func ValidRole(role Role) bool {
	switch role {
	case RoleOwner, RoleAdmin, RoleMember, RoleClient:
		return true
	}
	return false
}
