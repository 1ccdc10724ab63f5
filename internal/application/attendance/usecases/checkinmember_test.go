package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymstack/internal/application/authz"
	"gymstack/internal/application/testutil"
	"gymstack/internal/domain/member"
	"gymstack/internal/domain/permission"
	infraauthz "gymstack/internal/infrastructure/authz"
	"gymstack/internal/shared/errors"
	"gymstack/internal/shared/logger"
)

func newCheckInFixture(t *testing.T) (*CheckInMemberUseCase, *testutil.MemoryMemberRepo, *testutil.MemoryAttendanceRepo) {
	t.Helper()
	enforcer, err := infraauthz.NewEnforcer()
	require.NoError(t, err)
	permissions := authz.NewPermissionService(enforcer, logger.NewNop())

	members := testutil.NewMemoryMemberRepo()
	attendances := testutil.NewMemoryAttendanceRepo()
	uc := NewCheckInMemberUseCase(attendances, members, permissions, logger.NewNop())
	return uc, members, attendances
}

func seedActiveMember(t *testing.T, members *testutil.MemoryMemberRepo, organizationID uint) *member.Member {
	t.Helper()
	m, err := member.NewMember(organizationID, "Jordan Reyes", "jordan@example.com", "")
	require.NoError(t, err)
	m.Activate()
	require.NoError(t, members.Create(context.Background(), m))
	return m
}

func TestCheckInMember(t *testing.T) {
	ctx := context.Background()

	t.Run("records a check-in", func(t *testing.T) {
		uc, members, _ := newCheckInFixture(t)
		m := seedActiveMember(t, members, 1)

		result, err := uc.Execute(ctx, CheckInMemberCommand{
			ActorRole:      permission.RoleTrainer,
			ActorUserID:    10,
			OrganizationID: 1,
			MemberID:       m.ID(),
		})
		require.NoError(t, err)
		assert.Equal(t, m.ID(), result.MemberID)
		assert.False(t, result.CheckedInAt.IsZero())
	})

	t.Run("rejects a second check-in the same day", func(t *testing.T) {
		uc, members, _ := newCheckInFixture(t)
		m := seedActiveMember(t, members, 1)

		morning := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
		cmd := CheckInMemberCommand{
			ActorRole:      permission.RoleStaff,
			ActorUserID:    10,
			OrganizationID: 1,
			MemberID:       m.ID(),
			CheckedInAt:    morning,
		}
		_, err := uc.Execute(ctx, cmd)
		require.NoError(t, err)

		cmd.CheckedInAt = morning.Add(10 * time.Hour)
		_, err = uc.Execute(ctx, cmd)
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
	})

	t.Run("allows a check-in the next day", func(t *testing.T) {
		uc, members, _ := newCheckInFixture(t)
		m := seedActiveMember(t, members, 1)

		day := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
		cmd := CheckInMemberCommand{
			ActorRole:      permission.RoleStaff,
			ActorUserID:    10,
			OrganizationID: 1,
			MemberID:       m.ID(),
			CheckedInAt:    day,
		}
		_, err := uc.Execute(ctx, cmd)
		require.NoError(t, err)

		cmd.CheckedInAt = day.AddDate(0, 0, 1)
		_, err = uc.Execute(ctx, cmd)
		assert.NoError(t, err)
	})

	t.Run("rejects inactive member", func(t *testing.T) {
		uc, members, _ := newCheckInFixture(t)
		m, err := member.NewMember(1, "Sam Ortiz", "", "")
		require.NoError(t, err)
		require.NoError(t, members.Create(ctx, m))

		_, err = uc.Execute(ctx, CheckInMemberCommand{
			ActorRole:      permission.RoleStaff,
			ActorUserID:    10,
			OrganizationID: 1,
			MemberID:       m.ID(),
		})
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
	})

	t.Run("rejects member from another organization", func(t *testing.T) {
		uc, members, _ := newCheckInFixture(t)
		m := seedActiveMember(t, members, 2)

		_, err := uc.Execute(ctx, CheckInMemberCommand{
			ActorRole:      permission.RoleStaff,
			ActorUserID:    10,
			OrganizationID: 1,
			MemberID:       m.ID(),
		})
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
	})
}
