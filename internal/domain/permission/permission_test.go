package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionsForRole(t *testing.T) {
	t.Run("god gets everything", func(t *testing.T) {
		assert.ElementsMatch(t, AllPermissions(), PermissionsForRole(RoleGod))
	})

	t.Run("every other role is a strict subset of god", func(t *testing.T) {
		full := len(AllPermissions())
		for _, role := range AllRoles {
			if role == RoleGod {
				continue
			}
			perms := PermissionsForRole(role)
			assert.Less(t, len(perms), full, "role %s", role)
			for _, p := range perms {
				assert.True(t, RoleHasPermission(RoleGod, p), "god missing %s granted to %s", p, role)
			}
		}
	})

	t.Run("unknown role gets nothing", func(t *testing.T) {
		assert.Empty(t, PermissionsForRole(Role("intruder")))
	})

	t.Run("returns a copy", func(t *testing.T) {
		perms := PermissionsForRole(RoleTrainer)
		require.NotEmpty(t, perms)
		perms[0] = SystemManage
		assert.False(t, RoleHasPermission(RoleTrainer, SystemManage))
	})
}

func TestRoleHasPermission(t *testing.T) {
	cases := []struct {
		role   Role
		action Permission
		want   bool
	}{
		{RoleGod, SystemManage, true},
		{RoleGod, OrganizationsCreate, true},
		{RoleOwner, StaffCreate, true},
		{RoleOwner, OrganizationsBilling, true},
		{RoleOwner, SystemManage, false},
		{RoleOwner, OrganizationsCreate, false},
		{RoleAdmin, MembersDelete, true},
		{RoleAdmin, StaffCreate, false},
		{RoleStaff, MembersCreate, true},
		{RoleStaff, MembersDelete, false},
		{RoleStaff, MembershipsCancel, false},
		{RoleTrainer, AttendanceCreate, true},
		{RoleTrainer, MembersCreate, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, RoleHasPermission(tc.role, tc.action), "%s / %s", tc.role, tc.action)
	}
}

func TestParseRole(t *testing.T) {
	for _, role := range AllRoles {
		parsed, ok := ParseRole(role.String())
		require.True(t, ok)
		assert.Equal(t, role, parsed)
	}

	_, ok := ParseRole("superuser")
	assert.False(t, ok)
}

func TestRoleIsValid(t *testing.T) {
	for _, role := range AllRoles {
		assert.True(t, role.IsValid(), role.String())
	}
	assert.False(t, Role("").IsValid())
	assert.False(t, Role("superuser").IsValid())
}
