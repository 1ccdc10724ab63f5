package usecases

import (
	"context"

	"gymstack/internal/application/authz"
	"gymstack/internal/application/member/dto"
	"gymstack/internal/domain/member"
	"gymstack/internal/domain/permission"
	"gymstack/internal/shared/utils"
)

type ListMembersQuery struct {
	ActorRole      permission.Role
	OrganizationID uint
	Pagination     utils.Pagination
}

type ListMembersResult struct {
	Members []*dto.MemberDTO `json:"members"`
	Total   int64            `json:"total"`
}

type ListMembersUseCase struct {
	members     member.Repository
	permissions authz.PermissionService
}

func NewListMembersUseCase(members member.Repository, permissions authz.PermissionService) *ListMembersUseCase {
	return &ListMembersUseCase{members: members, permissions: permissions}
}

func (uc *ListMembersUseCase) Execute(ctx context.Context, query ListMembersQuery) (*ListMembersResult, error) {
	if err := uc.permissions.Require(query.ActorRole, permission.MembersRead); err != nil {
		return nil, err
	}

	p := utils.ValidatePagination(query.Pagination.Page, query.Pagination.PageSize)
	members, total, err := uc.members.List(ctx, query.OrganizationID, p.Offset(), p.PageSize)
	if err != nil {
		return nil, err
	}
	return &ListMembersResult{Members: dto.ToMemberDTOList(members), Total: total}, nil
}
