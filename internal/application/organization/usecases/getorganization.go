package usecases

import (
	"context"
	"errors"

	"gymstack/internal/application/authz"
	"gymstack/internal/application/entitlement"
	"gymstack/internal/application/organization/dto"
	"gymstack/internal/domain/organization"
	"gymstack/internal/domain/permission"
	apperrors "gymstack/internal/shared/errors"
)

type GetOrganizationQuery struct {
	ActorRole      permission.Role
	OrganizationID uint
}

type GetOrganizationResult struct {
	Organization *dto.OrganizationDTO `json:"organization"`
	Limits       *dto.PlanLimitsDTO   `json:"limits"`
}

type GetOrganizationUseCase struct {
	organizations organization.Repository
	entitlements  entitlement.Service
	permissions   authz.PermissionService
}

func NewGetOrganizationUseCase(
	organizations organization.Repository,
	entitlements entitlement.Service,
	permissions authz.PermissionService,
) *GetOrganizationUseCase {
	return &GetOrganizationUseCase{
		organizations: organizations,
		entitlements:  entitlements,
		permissions:   permissions,
	}
}

func (uc *GetOrganizationUseCase) Execute(ctx context.Context, query GetOrganizationQuery) (*GetOrganizationResult, error) {
	if err := uc.permissions.Require(query.ActorRole, permission.OrganizationsRead); err != nil {
		return nil, err
	}

	org, err := uc.organizations.GetByID(ctx, query.OrganizationID)
	if err != nil {
		if errors.Is(err, organization.ErrOrganizationNotFound) {
			return nil, apperrors.NewNotFoundError("organization not found")
		}
		return nil, err
	}

	limits, err := uc.entitlements.GetLimits(ctx, query.OrganizationID)
	if err != nil {
		return nil, err
	}

	return &GetOrganizationResult{
		Organization: dto.ToOrganizationDTO(org),
		Limits:       dto.ToPlanLimitsDTO(limits),
	}, nil
}
