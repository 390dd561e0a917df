package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		role       Role
		permission Permission
		want       bool
	}{
		{RoleOwner, PermissionPayrollView, true},
		{RoleOwner, PermissionPayrollExport, true},
		{RoleManager, PermissionPayrollView, true},
		{RoleManager, PermissionPayrollExport, false},
		{RoleEmployee, PermissionPayrollView, false},
		{RolePending, PermissionPayrollView, false},
		{Role("auditor"), PermissionPayrollView, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+string(tt.permission), func(t *testing.T) {
			assert.Equal(t, tt.want, HasPermission(tt.role, tt.permission))
		})
	}
}

func TestParseRole(t *testing.T) {
	role, ok := ParseRole("manager")
	assert.True(t, ok)
	assert.Equal(t, RoleManager, role)

	_, ok = ParseRole("auditor")
	assert.False(t, ok)
}
