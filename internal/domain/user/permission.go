package user

type Permission string

const (
	// Payroll
	PermissionPayrollView   Permission = "payroll.view"
	PermissionPayrollExport Permission = "payroll.export"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleOwner: {
		PermissionPayrollView,
		PermissionPayrollExport,
	},
	RoleManager: {
		// Managers review payroll but exports stay with the owner
		PermissionPayrollView,
	},
	RoleEmployee: {},
	RolePending:  {},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
