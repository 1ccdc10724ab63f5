package usecases

import (
	"context"

	"gymstack/internal/application/authz"
	"gymstack/internal/application/organization/dto"
	"gymstack/internal/domain/organization"
	"gymstack/internal/domain/permission"
	"gymstack/internal/shared/utils"
)

// ListOrganizationsQuery lists every tenant. System console only.
type ListOrganizationsQuery struct {
	ActorRole  permission.Role
	Pagination utils.Pagination
}

type ListOrganizationsResult struct {
	Organizations []*dto.OrganizationDTO `json:"organizations"`
	Total         int64                  `json:"total"`
}

type ListOrganizationsUseCase struct {
	organizations organization.Repository
	permissions   authz.PermissionService
}

func NewListOrganizationsUseCase(
	organizations organization.Repository,
	permissions authz.PermissionService,
) *ListOrganizationsUseCase {
	return &ListOrganizationsUseCase{
		organizations: organizations,
		permissions:   permissions,
	}
}

func (uc *ListOrganizationsUseCase) Execute(ctx context.Context, query ListOrganizationsQuery) (*ListOrganizationsResult, error) {
	if err := uc.permissions.Require(query.ActorRole, permission.SystemManage); err != nil {
		return nil, err
	}

	p := utils.ValidatePagination(query.Pagination.Page, query.Pagination.PageSize)
	orgs, total, err := uc.organizations.List(ctx, p.Offset(), p.PageSize)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.OrganizationDTO, 0, len(orgs))
	for _, org := range orgs {
		out = append(out, dto.ToOrganizationDTO(org))
	}
	return &ListOrganizationsResult{Organizations: out, Total: total}, nil
}
