package authz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymstack/internal/domain/permission"
	infraauthz "gymstack/internal/infrastructure/authz"
	"gymstack/internal/shared/errors"
	"gymstack/internal/shared/logger"
)

func newService(t *testing.T) PermissionService {
	t.Helper()
	enforcer, err := infraauthz.NewEnforcer()
	require.NoError(t, err)
	return NewPermissionService(enforcer, logger.NewNop())
}

func TestCan_AgreesWithStaticTable(t *testing.T) {
	svc := newService(t)

	for _, role := range permission.AllRoles {
		for _, action := range permission.AllPermissions() {
			want := permission.RoleHasPermission(role, action)
			got := svc.Can(role, action)
			assert.Equal(t, want, got, "role=%s action=%s", role, action)
		}
	}
}

func TestCan_GodHasEveryPermission(t *testing.T) {
	svc := newService(t)

	for _, action := range permission.AllPermissions() {
		assert.True(t, svc.Can(permission.RoleGod, action), "god denied %s", action)
	}

	// Every other role's grants must be a subset of god's.
	for _, role := range permission.AllRoles {
		for _, action := range permission.PermissionsForRole(role) {
			assert.True(t, svc.Can(permission.RoleGod, action),
				"role %s has %s but god does not", role, action)
		}
	}
}

func TestCan_UnknownRoleDenied(t *testing.T) {
	svc := newService(t)

	assert.False(t, svc.Can(permission.Role("superuser"), permission.MembersRead))
	assert.False(t, svc.Can(permission.Role(""), permission.MembersRead))
}

func TestRequire_AllowedReturnsNil(t *testing.T) {
	svc := newService(t)

	assert.NoError(t, svc.Require(permission.RoleStaff, permission.MembersCreate))
	assert.NoError(t, svc.Require(permission.RoleOwner, permission.StaffCreate))
}

func TestRequire_DeniedReturnsForbiddenWithRoleLabel(t *testing.T) {
	svc := newService(t)

	err := svc.Require(permission.RoleTrainer, permission.MembersDelete)
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.True(t, strings.Contains(appErr.Message, "Trainer"), "message %q should name the role", appErr.Message)
	assert.True(t, strings.Contains(appErr.Message, string(permission.MembersDelete)))
}

func TestRequire_UnknownRoleGetsGenericDenial(t *testing.T) {
	svc := newService(t)

	err := svc.Require(permission.Role("intern"), permission.MembersRead)
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
	assert.Equal(t, "permission denied", errors.GetAppError(err).Message)
}

func TestRequire_RequireAndCanAgree(t *testing.T) {
	svc := newService(t)

	for _, role := range permission.AllRoles {
		for _, action := range permission.AllPermissions() {
			err := svc.Require(role, action)
			if svc.Can(role, action) {
				assert.NoError(t, err, "role=%s action=%s", role, action)
			} else {
				assert.True(t, errors.IsForbiddenError(err), "role=%s action=%s", role, action)
			}
		}
	}
}
