package user

type Role string

const (
	RoleOwner    Role = "owner"    // Company owner - full access
	RoleManager  Role = "manager"  // Store or location manager
	RoleEmployee Role = "employee" // Regular employee
	RolePending  Role = "pending"  // Still in onboarding
)

// ParseRole returns the role for value and whether it is known.
func ParseRole(value string) (Role, bool) {
	role := Role(value)
	_, ok := RolePermissions[role]
	return role, ok
}
