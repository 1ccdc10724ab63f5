package uow

import (
	"context"
	"errors"

	"gymstack/internal/domain/organization"
	"gymstack/internal/domain/permission"
	"gymstack/internal/domain/subscription"
	"gymstack/internal/domain/user"
	"gymstack/internal/shared/constants"
	apperrors "gymstack/internal/shared/errors"
	"gymstack/internal/shared/utils"
)

// CreateOrganizationWithOwnerCommand creates a tenant together with its owner
// account and trial subscription. When OwnerUserID is set, that existing
// orphan user is attached as owner; otherwise a new owner user is created from
// the Owner* fields.
type CreateOrganizationWithOwnerCommand struct {
	Name              string
	Slug              string // derived from Name when empty
	PlanSlug          string // defaults to the free trial plan
	OwnerUserID       uint
	OwnerEmail        string
	OwnerName         string
	OwnerPasswordHash string
}

type CreateOrganizationWithOwnerResult struct {
	Organization *organization.Organization
	Owner        *user.User
	Subscription *subscription.Subscription
}

// CreateOrganizationWithOwner creates the organization, its owner user and the
// trial subscription in one transaction. Nothing is persisted when any step
// fails.
func (u *UnitOfWork) CreateOrganizationWithOwner(ctx context.Context, cmd CreateOrganizationWithOwnerCommand) (*CreateOrganizationWithOwnerResult, error) {
	slug := cmd.Slug
	if slug == "" {
		slug = utils.Slugify(cmd.Name)
	}
	planSlug := cmd.PlanSlug
	if planSlug == "" {
		planSlug = constants.PlanSlugFreeTrial
	}

	var result CreateOrganizationWithOwnerResult
	err := u.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := u.organizations.GetBySlug(txCtx, slug); err == nil {
			return apperrors.NewConflictError("organization slug already exists", slug)
		} else if !errors.Is(err, organization.ErrOrganizationNotFound) {
			return err
		}

		org, err := organization.NewOrganization(cmd.Name, slug, planSlug, organization.PlanNameForSlug(planSlug))
		if err != nil {
			return apperrors.NewValidationError(err.Error())
		}
		if err := u.organizations.Create(txCtx, org); err != nil {
			if errors.Is(err, organization.ErrDuplicateSlug) || apperrors.IsDuplicateError(err) {
				return apperrors.NewConflictError("organization slug already exists", slug)
			}
			return err
		}

		var owner *user.User
		if cmd.OwnerUserID != 0 {
			owner, err = u.users.GetByID(txCtx, cmd.OwnerUserID)
			if err != nil {
				if errors.Is(err, user.ErrUserNotFound) {
					return apperrors.NewNotFoundError("user not found")
				}
				return err
			}
			if err := owner.AttachToOrganization(org.ID(), permission.RoleOwner); err != nil {
				return apperrors.NewConflictError(err.Error())
			}
			if err := u.users.Update(txCtx, owner); err != nil {
				return err
			}
		} else {
			orgID := org.ID()
			owner, err = user.NewUser(cmd.OwnerEmail, cmd.OwnerName, cmd.OwnerPasswordHash, permission.RoleOwner, &orgID)
			if err != nil {
				return apperrors.NewValidationError(err.Error())
			}
			if err := u.users.Create(txCtx, owner); err != nil {
				if errors.Is(err, user.ErrDuplicateEmail) || apperrors.IsDuplicateError(err) {
					return apperrors.NewConflictError("email already registered", cmd.OwnerEmail)
				}
				return err
			}
		}

		sub, err := subscription.NewTrialSubscription(org.ID(), planSlug, constants.DefaultTrialDays)
		if err != nil {
			return apperrors.NewValidationError(err.Error())
		}
		if err := u.subscriptions.Create(txCtx, sub); err != nil {
			return err
		}

		result = CreateOrganizationWithOwnerResult{Organization: org, Owner: owner, Subscription: sub}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.logger.Infow("organization created",
		"organization_id", result.Organization.ID(),
		"slug", slug,
		"plan", planSlug,
		"owner_id", result.Owner.ID(),
	)
	return &result, nil
}

// UpgradeOrganizationPlanCommand moves a tenant to a different organization
// plan.
type UpgradeOrganizationPlanCommand struct {
	OrganizationID uint
	PlanSlug       string
	PricePaid      uint64
}

// UpgradeOrganizationPlan updates the organization's plan fields and the
// subscription's plan and price in one transaction. The organization is
// re-read inside the transaction so a concurrent upgrade cannot interleave.
func (u *UnitOfWork) UpgradeOrganizationPlan(ctx context.Context, cmd UpgradeOrganizationPlanCommand) (*organization.Organization, error) {
	if !organization.IsKnownPlanSlug(cmd.PlanSlug) {
		return nil, apperrors.NewValidationError("unknown organization plan", cmd.PlanSlug)
	}

	var org *organization.Organization
	err := u.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		org, err = u.organizations.GetByID(txCtx, cmd.OrganizationID)
		if err != nil {
			if errors.Is(err, organization.ErrOrganizationNotFound) {
				return apperrors.NewNotFoundError("organization not found")
			}
			return err
		}

		if err := org.ChangePlan(cmd.PlanSlug, organization.PlanNameForSlug(cmd.PlanSlug)); err != nil {
			return apperrors.NewValidationError(err.Error())
		}
		if err := u.organizations.Update(txCtx, org); err != nil {
			return err
		}

		sub, err := u.subscriptions.GetByOrganization(txCtx, cmd.OrganizationID)
		if err != nil {
			if errors.Is(err, subscription.ErrSubscriptionNotFound) {
				return apperrors.NewNotFoundError("subscription not found")
			}
			return err
		}
		if err := sub.ChangePlan(cmd.PlanSlug, cmd.PricePaid); err != nil {
			return apperrors.NewConflictError(err.Error())
		}
		return u.subscriptions.Update(txCtx, sub)
	})
	if err != nil {
		return nil, err
	}

	u.logger.Infow("organization plan upgraded",
		"organization_id", cmd.OrganizationID,
		"plan", cmd.PlanSlug,
	)
	return org, nil
}

// UpdateOrganizationSettingsCommand patches tenant settings. Name is ignored
// when empty; a nil ImageURL leaves the logo untouched; Config is merged two
// levels deep into the existing configuration.
type UpdateOrganizationSettingsCommand struct {
	OrganizationID uint
	Name           string
	ImageURL       *string
	Config         map[string]any
}

// UpdateOrganizationSettings applies the patch read-merge-write inside one
// transaction.
func (u *UnitOfWork) UpdateOrganizationSettings(ctx context.Context, cmd UpdateOrganizationSettingsCommand) (*organization.Organization, error) {
	var org *organization.Organization
	err := u.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		org, err = u.organizations.GetByID(txCtx, cmd.OrganizationID)
		if err != nil {
			if errors.Is(err, organization.ErrOrganizationNotFound) {
				return apperrors.NewNotFoundError("organization not found")
			}
			return err
		}

		if cmd.Name != "" {
			if err := org.Rename(cmd.Name); err != nil {
				return apperrors.NewValidationError(err.Error())
			}
		}
		if cmd.ImageURL != nil {
			org.SetImageURL(*cmd.ImageURL)
		}
		if len(cmd.Config) > 0 {
			org.MergeConfig(cmd.Config)
		}
		return u.organizations.Update(txCtx, org)
	})
	if err != nil {
		return nil, err
	}

	u.logger.Infow("organization settings updated", "organization_id", cmd.OrganizationID)
	return org, nil
}
