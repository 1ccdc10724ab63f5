package usecases

import (
	"context"

	"gymstack/internal/application/authz"
	"gymstack/internal/application/membership/dto"
	"gymstack/internal/domain/membership"
	"gymstack/internal/domain/permission"
	"gymstack/internal/shared/utils"
)

// ListMembershipsQuery lists memberships for a tenant, optionally narrowed to
// a single member.
type ListMembershipsQuery struct {
	ActorRole      permission.Role
	OrganizationID uint
	MemberID       uint // 0 lists the whole organization
	Pagination     utils.Pagination
}

type ListMembershipsResult struct {
	Memberships []*dto.MembershipDTO `json:"memberships"`
	Total       int64                `json:"total"`
}

type ListMembershipsUseCase struct {
	memberships membership.Repository
	permissions authz.PermissionService
}

func NewListMembershipsUseCase(memberships membership.Repository, permissions authz.PermissionService) *ListMembershipsUseCase {
	return &ListMembershipsUseCase{memberships: memberships, permissions: permissions}
}

func (uc *ListMembershipsUseCase) Execute(ctx context.Context, query ListMembershipsQuery) (*ListMembershipsResult, error) {
	if err := uc.permissions.Require(query.ActorRole, permission.MembershipsRead); err != nil {
		return nil, err
	}

	if query.MemberID != 0 {
		memberships, err := uc.memberships.ListByMember(ctx, query.MemberID, query.OrganizationID)
		if err != nil {
			return nil, err
		}
		return &ListMembershipsResult{
			Memberships: dto.ToMembershipDTOList(memberships),
			Total:       int64(len(memberships)),
		}, nil
	}

	p := utils.ValidatePagination(query.Pagination.Page, query.Pagination.PageSize)
	memberships, total, err := uc.memberships.ListByOrganization(ctx, query.OrganizationID, p.Offset(), p.PageSize)
	if err != nil {
		return nil, err
	}
	return &ListMembershipsResult{
		Memberships: dto.ToMembershipDTOList(memberships),
		Total:       total,
	}, nil
}
