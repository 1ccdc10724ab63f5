package entitlement

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymstack/internal/application/testutil"
	"gymstack/internal/domain/member"
	"gymstack/internal/domain/organization"
	"gymstack/internal/domain/permission"
	"gymstack/internal/domain/user"
	"gymstack/internal/shared/constants"
	"gymstack/internal/shared/errors"
	"gymstack/internal/shared/logger"
)

type fixture struct {
	svc     Service
	orgs    *testutil.MemoryOrganizationRepo
	members *testutil.MemoryMemberRepo
	users   *testutil.MemoryUserRepo
}

func newFixture() *fixture {
	orgs := testutil.NewMemoryOrganizationRepo()
	members := testutil.NewMemoryMemberRepo()
	users := testutil.NewMemoryUserRepo()
	return &fixture{
		svc:     NewService(orgs, members, users, logger.NewNop()),
		orgs:    orgs,
		members: members,
		users:   users,
	}
}

func (f *fixture) seedOrg(t *testing.T, planSlug string) *organization.Organization {
	t.Helper()
	org, err := organization.NewOrganization("Iron Temple", "iron-temple", planSlug, organization.PlanNameForSlug(planSlug))
	require.NoError(t, err)
	require.NoError(t, f.orgs.Create(context.Background(), org))
	return org
}

func (f *fixture) seedActiveMembers(t *testing.T, orgID uint, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		m, err := member.NewMember(orgID, fmt.Sprintf("Member %d", i), "", "")
		require.NoError(t, err)
		m.Activate()
		require.NoError(t, f.members.Create(context.Background(), m))
	}
}

func (f *fixture) seedStaff(t *testing.T, orgID uint, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		u, err := user.NewUser(fmt.Sprintf("staff%d@example.com", i), fmt.Sprintf("Staff %d", i), "hash", permission.RoleStaff, &orgID)
		require.NoError(t, err)
		require.NoError(t, f.users.Create(context.Background(), u))
	}
}

func TestGetLimits_ResolvesPlan(t *testing.T) {
	f := newFixture()
	org := f.seedOrg(t, constants.PlanSlugBasic)

	limits, err := f.svc.GetLimits(context.Background(), org.ID())
	require.NoError(t, err)
	require.NotNil(t, limits.MaxMembers)
	assert.Equal(t, 200, *limits.MaxMembers)
	assert.True(t, limits.HasFeature(constants.FeatureInvoicing))
	assert.False(t, limits.HasFeature(constants.FeatureAPIAccess))
}

func TestGetLimits_UnknownPlanFallsBackToFreeTrial(t *testing.T) {
	f := newFixture()
	org := f.seedOrg(t, "enterprise-gold")

	limits, err := f.svc.GetLimits(context.Background(), org.ID())
	require.NoError(t, err)
	require.NotNil(t, limits.MaxMembers)
	assert.Equal(t, 50, *limits.MaxMembers)
	assert.False(t, limits.HasFeature(constants.FeatureInvoicing))
}

func TestGetLimits_OrganizationNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.svc.GetLimits(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestRequireMemberLimit_UnderCap(t *testing.T) {
	f := newFixture()
	org := f.seedOrg(t, constants.PlanSlugFreeTrial)
	f.seedActiveMembers(t, org.ID(), 49)

	assert.NoError(t, f.svc.RequireMemberLimit(context.Background(), org.ID()))
}

func TestRequireMemberLimit_AtCap(t *testing.T) {
	f := newFixture()
	org := f.seedOrg(t, constants.PlanSlugFreeTrial)
	f.seedActiveMembers(t, org.ID(), 50)

	err := f.svc.RequireMemberLimit(context.Background(), org.ID())
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestRequireMemberLimit_InactiveMembersDoNotCount(t *testing.T) {
	f := newFixture()
	org := f.seedOrg(t, constants.PlanSlugFreeTrial)
	for i := 0; i < 60; i++ {
		m, err := member.NewMember(org.ID(), fmt.Sprintf("Inactive %d", i), "", "")
		require.NoError(t, err)
		require.NoError(t, f.members.Create(context.Background(), m))
	}

	assert.NoError(t, f.svc.RequireMemberLimit(context.Background(), org.ID()))
}

func TestRequireMemberLimit_NilCapNeverFails(t *testing.T) {
	f := newFixture()
	org := f.seedOrg(t, constants.PlanSlugUnlimited)
	f.seedActiveMembers(t, org.ID(), 75)

	assert.NoError(t, f.svc.RequireMemberLimit(context.Background(), org.ID()))
}

func TestRequireStaffLimit_Boundary(t *testing.T) {
	f := newFixture()
	org := f.seedOrg(t, constants.PlanSlugFreeTrial)
	f.seedStaff(t, org.ID(), 2)

	assert.NoError(t, f.svc.RequireStaffLimit(context.Background(), org.ID()))

	f.seedStaff(t, org.ID(), 1)
	err := f.svc.RequireStaffLimit(context.Background(), org.ID())
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestRequireFeature(t *testing.T) {
	f := newFixture()
	trial := f.seedOrg(t, constants.PlanSlugFreeTrial)

	err := f.svc.RequireFeature(context.Background(), trial.ID(), constants.FeatureInvoicing)
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))

	pro, err := organization.NewOrganization("Pro Gym", "pro-gym", constants.PlanSlugPro, "Pro")
	require.NoError(t, err)
	require.NoError(t, f.orgs.Create(context.Background(), pro))
	assert.NoError(t, f.svc.RequireFeature(context.Background(), pro.ID(), constants.FeatureInvoicing))
	assert.NoError(t, f.svc.RequireFeature(context.Background(), pro.ID(), constants.FeatureAPIAccess))
}

func TestCheckStorageLimit(t *testing.T) {
	f := newFixture()
	org := f.seedOrg(t, constants.PlanSlugFreeTrial)

	// exactly at the 1 GiB cap is still allowed
	assert.NoError(t, f.svc.CheckStorageLimit(context.Background(), org.ID(), 1<<30))

	err := f.svc.CheckStorageLimit(context.Background(), org.ID(), (1<<30)+1)
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestCheckStorageLimit_CountsExistingUsage(t *testing.T) {
	f := newFixture()
	org := f.seedOrg(t, constants.PlanSlugFreeTrial)
	org.AddStorageUsage(1 << 29) // 512 MiB already used
	require.NoError(t, f.orgs.Update(context.Background(), org))

	assert.NoError(t, f.svc.CheckStorageLimit(context.Background(), org.ID(), 1<<29))
	err := f.svc.CheckStorageLimit(context.Background(), org.ID(), (1<<29)+1)
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestCheckStorageLimit_UnlimitedPlan(t *testing.T) {
	f := newFixture()
	org := f.seedOrg(t, constants.PlanSlugUnlimited)

	assert.NoError(t, f.svc.CheckStorageLimit(context.Background(), org.ID(), 1<<40))
}
