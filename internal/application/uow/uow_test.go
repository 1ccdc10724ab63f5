package uow

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymstack/internal/application/entitlement"
	"gymstack/internal/application/testutil"
	"gymstack/internal/domain/member"
	"gymstack/internal/domain/membership"
	"gymstack/internal/domain/organization"
	"gymstack/internal/domain/permission"
	"gymstack/internal/domain/user"
	"gymstack/internal/shared/constants"
	"gymstack/internal/shared/errors"
	"gymstack/internal/shared/logger"
)

type fixture struct {
	uow         *UnitOfWork
	tx          *testutil.StubTxManager
	orgs        *testutil.MemoryOrganizationRepo
	users       *testutil.MemoryUserRepo
	members     *testutil.MemoryMemberRepo
	memberships *testutil.MemoryMembershipRepo
	subs        *testutil.MemorySubscriptionRepo
}

func newFixture() *fixture {
	orgs := testutil.NewMemoryOrganizationRepo()
	users := testutil.NewMemoryUserRepo()
	members := testutil.NewMemoryMemberRepo()
	memberships := testutil.NewMemoryMembershipRepo()
	subs := testutil.NewMemorySubscriptionRepo()
	tx := testutil.NewStubTxManager(orgs, users, members, memberships, subs)
	return &fixture{
		uow:         New(tx, orgs, users, members, memberships, subs, logger.NewNop()),
		tx:          tx,
		orgs:        orgs,
		users:       users,
		members:     members,
		memberships: memberships,
		subs:        subs,
	}
}

func (f *fixture) seedOrg(t *testing.T, slug string) *organization.Organization {
	t.Helper()
	org, err := organization.NewOrganization("Test Gym "+slug, slug, constants.PlanSlugFreeTrial, "Free Trial")
	require.NoError(t, err)
	require.NoError(t, f.orgs.Create(context.Background(), org))
	return org
}

func (f *fixture) seedMember(t *testing.T, orgID uint, name string) *member.Member {
	t.Helper()
	m, err := member.NewMember(orgID, name, "", "")
	require.NoError(t, err)
	require.NoError(t, f.members.Create(context.Background(), m))
	return m
}

func (f *fixture) memberIsActive(t *testing.T, memberID, orgID uint) bool {
	t.Helper()
	m, err := f.members.GetByID(context.Background(), memberID, orgID)
	require.NoError(t, err)
	return m.IsActive()
}

func membershipDates() (time.Time, time.Time) {
	start := time.Now()
	return start, start.AddDate(0, 1, 0)
}

func TestCreateOrganizationWithOwner(t *testing.T) {
	f := newFixture()

	result, err := f.uow.CreateOrganizationWithOwner(context.Background(), CreateOrganizationWithOwnerCommand{
		Name:              "Iron Temple",
		OwnerEmail:        "owner@irontemple.com",
		OwnerName:         "Ana Souza",
		OwnerPasswordHash: "hash",
	})
	require.NoError(t, err)

	assert.Equal(t, "iron-temple", result.Organization.Slug())
	assert.Equal(t, constants.PlanSlugFreeTrial, result.Organization.PlanSlug())
	assert.Equal(t, permission.RoleOwner, result.Owner.Role())
	require.NotNil(t, result.Owner.OrganizationID())
	assert.Equal(t, result.Organization.ID(), *result.Owner.OrganizationID())
	assert.Equal(t, result.Organization.ID(), result.Subscription.OrganizationID())
	assert.Equal(t, constants.PlanSlugFreeTrial, result.Subscription.PlanSlug())
}

func TestCreateOrganizationWithOwner_AttachesOrphanUser(t *testing.T) {
	f := newFixture()
	orphan, err := user.NewUser("orphan@example.com", "Orphan", "hash", "", nil)
	require.NoError(t, err)
	require.NoError(t, f.users.Create(context.Background(), orphan))

	result, err := f.uow.CreateOrganizationWithOwner(context.Background(), CreateOrganizationWithOwnerCommand{
		Name:        "Iron Temple",
		OwnerUserID: orphan.ID(),
	})
	require.NoError(t, err)

	attached, err := f.users.GetByID(context.Background(), orphan.ID())
	require.NoError(t, err)
	assert.Equal(t, permission.RoleOwner, attached.Role())
	require.NotNil(t, attached.OrganizationID())
	assert.Equal(t, result.Organization.ID(), *attached.OrganizationID())
}

func TestCreateOrganizationWithOwner_DuplicateSlug(t *testing.T) {
	f := newFixture()
	f.seedOrg(t, "iron-temple")

	_, err := f.uow.CreateOrganizationWithOwner(context.Background(), CreateOrganizationWithOwnerCommand{
		Name:              "Iron Temple",
		OwnerEmail:        "owner@irontemple.com",
		OwnerName:         "Ana",
		OwnerPasswordHash: "hash",
	})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	assert.Equal(t, 1, f.orgs.Count())
}

func TestCreateOrganizationWithOwner_RollsBackOnFailure(t *testing.T) {
	f := newFixture()
	boom := stderrors.New("subscription insert failed")
	f.subs.CreateErr = boom

	_, err := f.uow.CreateOrganizationWithOwner(context.Background(), CreateOrganizationWithOwnerCommand{
		Name:              "Iron Temple",
		OwnerEmail:        "owner@irontemple.com",
		OwnerName:         "Ana",
		OwnerPasswordHash: "hash",
	})
	require.ErrorIs(t, err, boom)

	// nothing may survive the failed transaction
	assert.Equal(t, 0, f.orgs.Count())
	assert.Equal(t, 0, f.users.Count())
	assert.Equal(t, 0, f.subs.Count())
}

func TestUpgradeOrganizationPlan(t *testing.T) {
	f := newFixture()
	result, err := f.uow.CreateOrganizationWithOwner(context.Background(), CreateOrganizationWithOwnerCommand{
		Name:              "Iron Temple",
		OwnerEmail:        "owner@irontemple.com",
		OwnerName:         "Ana",
		OwnerPasswordHash: "hash",
	})
	require.NoError(t, err)
	orgID := result.Organization.ID()

	upgraded, err := f.uow.UpgradeOrganizationPlan(context.Background(), UpgradeOrganizationPlanCommand{
		OrganizationID: orgID,
		PlanSlug:       constants.PlanSlugPro,
		PricePaid:      9900,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.PlanSlugPro, upgraded.PlanSlug())

	sub, err := f.subs.GetByOrganization(context.Background(), orgID)
	require.NoError(t, err)
	assert.Equal(t, constants.PlanSlugPro, sub.PlanSlug())
	assert.Equal(t, uint64(9900), sub.PricePaid())

	// entitlements reflect the new plan immediately
	ent := entitlement.NewService(f.orgs, f.members, f.users, logger.NewNop())
	limits, err := ent.GetLimits(context.Background(), orgID)
	require.NoError(t, err)
	require.NotNil(t, limits.MaxMembers)
	assert.Equal(t, 1000, *limits.MaxMembers)
	assert.True(t, limits.HasFeature(constants.FeatureAPIAccess))
}

func TestUpgradeOrganizationPlan_UnknownPlan(t *testing.T) {
	f := newFixture()
	org := f.seedOrg(t, "iron-temple")

	_, err := f.uow.UpgradeOrganizationPlan(context.Background(), UpgradeOrganizationPlanCommand{
		OrganizationID: org.ID(),
		PlanSlug:       "platinum",
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateOrganizationSettings_MergeDepth(t *testing.T) {
	f := newFixture()
	org := f.seedOrg(t, "iron-temple")

	_, err := f.uow.UpdateOrganizationSettings(context.Background(), UpdateOrganizationSettingsCommand{
		OrganizationID: org.ID(),
		Config: map[string]any{
			"branding": map[string]any{"color": "red", "logo": "a.png"},
			"locale":   "pt-BR",
		},
	})
	require.NoError(t, err)

	updated, err := f.uow.UpdateOrganizationSettings(context.Background(), UpdateOrganizationSettingsCommand{
		OrganizationID: org.ID(),
		Name:           "Iron Temple 2",
		Config: map[string]any{
			"branding": map[string]any{"color": "blue"},
			"locale":   nil,
		},
	})
	require.NoError(t, err)

	cfg := updated.Config()
	branding := cfg["branding"].(map[string]any)
	assert.Equal(t, "blue", branding["color"])
	assert.Equal(t, "a.png", branding["logo"], "second-level keys merge, not replace")
	_, hasLocale := cfg["locale"]
	assert.False(t, hasLocale, "nil patch value deletes the key")
	assert.Equal(t, "Iron Temple 2", updated.Name())
}

func TestCreateMembershipAndActivate_ImmediateStart(t *testing.T) {
	f := newFixture()
	org := f.seedOrg(t, "iron-temple")
	m := f.seedMember(t, org.ID(), "Bruno")
	start, end := membershipDates()

	ms, err := f.uow.CreateMembershipAndActivate(context.Background(), CreateMembershipAndActivateCommand{
		OrganizationID:   org.ID(),
		MemberID:         m.ID(),
		PlanID:           1,
		PricePaid:        5000,
		Currency:         "USD",
		StartDate:        start,
		EndDate:          end,
		StartImmediately: true,
	})
	require.NoError(t, err)
	assert.Equal(t, membership.StatusActive, ms.Status())
	assert.True(t, f.memberIsActive(t, m.ID(), org.ID()))
}

func TestCreateMembershipAndActivate_PendingDoesNotActivate(t *testing.T) {
	f := newFixture()
	org := f.seedOrg(t, "iron-temple")
	m := f.seedMember(t, org.ID(), "Bruno")
	start, end := membershipDates()

	ms, err := f.uow.CreateMembershipAndActivate(context.Background(), CreateMembershipAndActivateCommand{
		OrganizationID: org.ID(),
		MemberID:       m.ID(),
		PlanID:         1,
		Currency:       "USD",
		StartDate:      start,
		EndDate:        end,
	})
	require.NoError(t, err)
	assert.Equal(t, membership.StatusPending, ms.Status())
	assert.False(t, f.memberIsActive(t, m.ID(), org.ID()))
}

func TestCreateMembershipAndActivate_DuplicateOpenRejected(t *testing.T) {
	f := newFixture()
	org := f.seedOrg(t, "iron-temple")
	m := f.seedMember(t, org.ID(), "Bruno")
	start, end := membershipDates()
	cmd := CreateMembershipAndActivateCommand{
		OrganizationID:   org.ID(),
		MemberID:         m.ID(),
		PlanID:           1,
		Currency:         "USD",
		StartDate:        start,
		EndDate:          end,
		StartImmediately: true,
	}

	first, err := f.uow.CreateMembershipAndActivate(context.Background(), cmd)
	require.NoError(t, err)

	_, err = f.uow.CreateMembershipAndActivate(context.Background(), cmd)
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))

	// the first membership survives untouched and the member stays active
	all, err := f.memberships.ListByMember(context.Background(), m.ID(), org.ID())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, first.ID(), all[0].ID())
	assert.True(t, f.memberIsActive(t, m.ID(), org.ID()))
}

func TestCancelMembershipAndDeactivate(t *testing.T) {
	f := newFixture()
	org := f.seedOrg(t, "iron-temple")
	m := f.seedMember(t, org.ID(), "Bruno")
	start, end := membershipDates()
	ms, err := f.uow.CreateMembershipAndActivate(context.Background(), CreateMembershipAndActivateCommand{
		OrganizationID: org.ID(), MemberID: m.ID(), PlanID: 1, Currency: "USD",
		StartDate: start, EndDate: end, StartImmediately: true,
	})
	require.NoError(t, err)

	cancelled, err := f.uow.CancelMembershipAndDeactivate(context.Background(), ms.ID(), org.ID())
	require.NoError(t, err)
	assert.Equal(t, membership.StatusCancelled, cancelled.Status())
	assert.False(t, f.memberIsActive(t, m.ID(), org.ID()))
}

func TestCancelMembershipAndDeactivate_CrossTenant(t *testing.T) {
	f := newFixture()
	org1 := f.seedOrg(t, "iron-temple")
	org2 := f.seedOrg(t, "steel-works")
	m := f.seedMember(t, org2.ID(), "Bruno")
	start, end := membershipDates()
	ms, err := f.uow.CreateMembershipAndActivate(context.Background(), CreateMembershipAndActivateCommand{
		OrganizationID: org2.ID(), MemberID: m.ID(), PlanID: 1, Currency: "USD",
		StartDate: start, EndDate: end, StartImmediately: true,
	})
	require.NoError(t, err)

	// another tenant addressing the membership reads as not found
	_, err = f.uow.CancelMembershipAndDeactivate(context.Background(), ms.ID(), org1.ID())
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))

	// and nothing changed
	unchanged, err := f.memberships.GetByID(context.Background(), ms.ID(), org2.ID())
	require.NoError(t, err)
	assert.Equal(t, membership.StatusActive, unchanged.Status())
	assert.True(t, f.memberIsActive(t, m.ID(), org2.ID()))
}

func TestDeleteMembershipAndDeactivate(t *testing.T) {
	f := newFixture()
	org := f.seedOrg(t, "iron-temple")
	m := f.seedMember(t, org.ID(), "Bruno")
	start, end := membershipDates()
	ms, err := f.uow.CreateMembershipAndActivate(context.Background(), CreateMembershipAndActivateCommand{
		OrganizationID: org.ID(), MemberID: m.ID(), PlanID: 1, Currency: "USD",
		StartDate: start, EndDate: end, StartImmediately: true,
	})
	require.NoError(t, err)

	require.NoError(t, f.uow.DeleteMembershipAndDeactivate(context.Background(), ms.ID(), org.ID()))

	_, err = f.memberships.GetByID(context.Background(), ms.ID(), org.ID())
	assert.ErrorIs(t, err, membership.ErrMembershipNotFound)

	deleted, err := f.memberships.GetByIDIncludingDeleted(context.Background(), ms.ID(), org.ID())
	require.NoError(t, err)
	assert.True(t, deleted.IsDeleted())
	assert.Equal(t, membership.StatusActive, deleted.Status(), "status survives soft delete")
	assert.False(t, f.memberIsActive(t, m.ID(), org.ID()))
}

func TestRestoreMembershipAndActivate(t *testing.T) {
	f := newFixture()
	org := f.seedOrg(t, "iron-temple")
	m := f.seedMember(t, org.ID(), "Bruno")
	start, end := membershipDates()
	ms, err := f.uow.CreateMembershipAndActivate(context.Background(), CreateMembershipAndActivateCommand{
		OrganizationID: org.ID(), MemberID: m.ID(), PlanID: 1, Currency: "USD",
		StartDate: start, EndDate: end, StartImmediately: true,
	})
	require.NoError(t, err)
	require.NoError(t, f.uow.DeleteMembershipAndDeactivate(context.Background(), ms.ID(), org.ID()))

	restored, err := f.uow.RestoreMembershipAndActivate(context.Background(), ms.ID(), org.ID())
	require.NoError(t, err)
	assert.False(t, restored.IsDeleted())
	assert.Equal(t, membership.StatusActive, restored.Status())
	assert.True(t, f.memberIsActive(t, m.ID(), org.ID()))
}

func TestRestoreMembershipAndActivate_CancelledStaysInactive(t *testing.T) {
	f := newFixture()
	org := f.seedOrg(t, "iron-temple")
	m := f.seedMember(t, org.ID(), "Bruno")
	start, end := membershipDates()
	ms, err := f.uow.CreateMembershipAndActivate(context.Background(), CreateMembershipAndActivateCommand{
		OrganizationID: org.ID(), MemberID: m.ID(), PlanID: 1, Currency: "USD",
		StartDate: start, EndDate: end, StartImmediately: true,
	})
	require.NoError(t, err)
	_, err = f.uow.CancelMembershipAndDeactivate(context.Background(), ms.ID(), org.ID())
	require.NoError(t, err)
	require.NoError(t, f.uow.DeleteMembershipAndDeactivate(context.Background(), ms.ID(), org.ID()))

	restored, err := f.uow.RestoreMembershipAndActivate(context.Background(), ms.ID(), org.ID())
	require.NoError(t, err)
	assert.Equal(t, membership.StatusCancelled, restored.Status())
	assert.False(t, f.memberIsActive(t, m.ID(), org.ID()),
		"restoring a cancelled membership must not activate the member")
}

func TestRestoreMembershipAndActivate_NotDeleted(t *testing.T) {
	f := newFixture()
	org := f.seedOrg(t, "iron-temple")
	m := f.seedMember(t, org.ID(), "Bruno")
	start, end := membershipDates()
	ms, err := f.uow.CreateMembershipAndActivate(context.Background(), CreateMembershipAndActivateCommand{
		OrganizationID: org.ID(), MemberID: m.ID(), PlanID: 1, Currency: "USD",
		StartDate: start, EndDate: end, StartImmediately: true,
	})
	require.NoError(t, err)

	_, err = f.uow.RestoreMembershipAndActivate(context.Background(), ms.ID(), org.ID())
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestRestoreMembershipAndActivate_BlockedByNewerOpenMembership(t *testing.T) {
	f := newFixture()
	org := f.seedOrg(t, "iron-temple")
	m := f.seedMember(t, org.ID(), "Bruno")
	start, end := membershipDates()
	first, err := f.uow.CreateMembershipAndActivate(context.Background(), CreateMembershipAndActivateCommand{
		OrganizationID: org.ID(), MemberID: m.ID(), PlanID: 1, Currency: "USD",
		StartDate: start, EndDate: end, StartImmediately: true,
	})
	require.NoError(t, err)
	require.NoError(t, f.uow.DeleteMembershipAndDeactivate(context.Background(), first.ID(), org.ID()))

	_, err = f.uow.CreateMembershipAndActivate(context.Background(), CreateMembershipAndActivateCommand{
		OrganizationID: org.ID(), MemberID: m.ID(), PlanID: 1, Currency: "USD",
		StartDate: start, EndDate: end, StartImmediately: true,
	})
	require.NoError(t, err)

	_, err = f.uow.RestoreMembershipAndActivate(context.Background(), first.ID(), org.ID())
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}
