// Package entitlement enforces the usage caps and feature flags an
// organization's plan grants.
package entitlement

import (
	"context"
	"errors"
	"fmt"

	"gymstack/internal/domain/member"
	"gymstack/internal/domain/organization"
	"gymstack/internal/domain/user"
	apperrors "gymstack/internal/shared/errors"
	"gymstack/internal/shared/logger"
)

// Service answers "may this organization grow by one more X" questions.
// Limit checks count current usage and compare against the plan's caps; the
// count and the later insert are not serialized, so a concurrent burst can
// overshoot a cap by a few rows. That is an accepted tradeoff: the caps are
// commercial soft limits, not integrity constraints.
type Service interface {
	// GetLimits resolves the organization's plan limits.
	GetLimits(ctx context.Context, organizationID uint) (organization.PlanLimits, error)

	// RequireMemberLimit returns a conflict error when the organization is at
	// its active-member cap. A nil cap never fails.
	RequireMemberLimit(ctx context.Context, organizationID uint) error

	// RequireStaffLimit returns a conflict error when the organization is at
	// its active-staff cap. A nil cap never fails.
	RequireStaffLimit(ctx context.Context, organizationID uint) error

	// RequireFeature returns a conflict error when the plan does not include
	// the feature.
	RequireFeature(ctx context.Context, organizationID uint, feature string) error

	// CheckStorageLimit returns a conflict error when storing incomingBytes
	// more would push the organization past its storage cap.
	CheckStorageLimit(ctx context.Context, organizationID uint, incomingBytes int64) error
}

type service struct {
	organizations organization.Repository
	members       member.Repository
	users         user.Repository
	logger        logger.Interface
}

// NewService creates the entitlement service.
func NewService(
	organizations organization.Repository,
	members member.Repository,
	users user.Repository,
	log logger.Interface,
) Service {
	return &service{
		organizations: organizations,
		members:       members,
		users:         users,
		logger:        log.Named("entitlement"),
	}
}

func (s *service) GetLimits(ctx context.Context, organizationID uint) (organization.PlanLimits, error) {
	org, err := s.getOrganization(ctx, organizationID)
	if err != nil {
		return organization.PlanLimits{}, err
	}
	return organization.LimitsForPlanSlug(org.PlanSlug()), nil
}

func (s *service) RequireMemberLimit(ctx context.Context, organizationID uint) error {
	limits, err := s.GetLimits(ctx, organizationID)
	if err != nil {
		return err
	}
	if limits.MaxMembers == nil {
		return nil
	}

	count, err := s.members.CountActiveByOrganization(ctx, organizationID)
	if err != nil {
		return err
	}
	if count >= int64(*limits.MaxMembers) {
		s.logger.Warnw("member limit reached",
			"organization_id", organizationID,
			"active_members", count,
			"max_members", *limits.MaxMembers,
		)
		return apperrors.NewConflictError("member limit reached",
			fmt.Sprintf("the current plan allows at most %d active members", *limits.MaxMembers))
	}
	return nil
}

func (s *service) RequireStaffLimit(ctx context.Context, organizationID uint) error {
	limits, err := s.GetLimits(ctx, organizationID)
	if err != nil {
		return err
	}
	if limits.MaxStaff == nil {
		return nil
	}

	count, err := s.users.CountActiveByOrganization(ctx, organizationID)
	if err != nil {
		return err
	}
	if count >= int64(*limits.MaxStaff) {
		s.logger.Warnw("staff limit reached",
			"organization_id", organizationID,
			"active_staff", count,
			"max_staff", *limits.MaxStaff,
		)
		return apperrors.NewConflictError("staff limit reached",
			fmt.Sprintf("the current plan allows at most %d active staff accounts", *limits.MaxStaff))
	}
	return nil
}

func (s *service) RequireFeature(ctx context.Context, organizationID uint, feature string) error {
	limits, err := s.GetLimits(ctx, organizationID)
	if err != nil {
		return err
	}
	if !limits.HasFeature(feature) {
		return apperrors.NewConflictError("feature not available",
			fmt.Sprintf("the current plan does not include %s", feature))
	}
	return nil
}

func (s *service) CheckStorageLimit(ctx context.Context, organizationID uint, incomingBytes int64) error {
	org, err := s.getOrganization(ctx, organizationID)
	if err != nil {
		return err
	}
	limits := organization.LimitsForPlanSlug(org.PlanSlug())
	if limits.MaxStorageBytes == nil {
		return nil
	}
	if org.StorageUsedBytes()+incomingBytes > *limits.MaxStorageBytes {
		return apperrors.NewConflictError("storage limit exceeded",
			fmt.Sprintf("the current plan allows at most %d bytes of storage", *limits.MaxStorageBytes))
	}
	return nil
}

func (s *service) getOrganization(ctx context.Context, organizationID uint) (*organization.Organization, error) {
	org, err := s.organizations.GetByID(ctx, organizationID)
	if err != nil {
		if errors.Is(err, organization.ErrOrganizationNotFound) {
			return nil, apperrors.NewNotFoundError("organization not found")
		}
		return nil, err
	}
	return org, nil
}
