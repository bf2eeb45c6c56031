package user

// Predicate decides whether a principal may perform an operation.
type Predicate func(principal User) bool

// Authenticated allows any signed-in principal.
func Authenticated(User) bool {
	return true
}

// IsAdmin is true for the ADMIN role or any superuser.
func IsAdmin(principal User) bool {
	return principal.Role == RoleAdmin || principal.IsSuperuser
}

// IsHR is true for the HR role.
func IsHR(principal User) bool {
	return principal.Role == RoleHR
}

// IsAdminOrHR is the union of IsAdmin and IsHR.
func IsAdminOrHR(principal User) bool {
	return IsAdmin(principal) || IsHR(principal)
}

// SelfOrAdmin allows the owner of a resource or an admin.
func SelfOrAdmin(ownerID string) Predicate {
	return func(principal User) bool {
		return (ownerID != "" && principal.ID == ownerID) || IsAdmin(principal)
	}
}

// DashboardKind picks which dashboard a principal sees.
type DashboardKind string

const (
	DashboardAdmin    DashboardKind = "admin"
	DashboardHR       DashboardKind = "hr"
	DashboardEmployee DashboardKind = "employee"
)

// DashboardFor dispatches on role with admin taking precedence over HR.
func DashboardFor(principal User) DashboardKind {
	switch {
	case IsAdmin(principal):
		return DashboardAdmin
	case IsHR(principal):
		return DashboardHR
	default:
		return DashboardEmployee
	}
}
