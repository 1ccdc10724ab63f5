package usecases

import (
	"context"

	"gymstack/internal/application/authz"
	"gymstack/internal/application/staff/dto"
	"gymstack/internal/domain/permission"
	"gymstack/internal/domain/user"
	"gymstack/internal/shared/utils"
)

type ListStaffQuery struct {
	ActorRole      permission.Role
	OrganizationID uint
	Pagination     utils.Pagination
}

type ListStaffResult struct {
	Staff []*dto.StaffDTO `json:"staff"`
	Total int64           `json:"total"`
}

type ListStaffUseCase struct {
	users       user.Repository
	permissions authz.PermissionService
}

func NewListStaffUseCase(users user.Repository, permissions authz.PermissionService) *ListStaffUseCase {
	return &ListStaffUseCase{users: users, permissions: permissions}
}

func (uc *ListStaffUseCase) Execute(ctx context.Context, query ListStaffQuery) (*ListStaffResult, error) {
	if err := uc.permissions.Require(query.ActorRole, permission.StaffRead); err != nil {
		return nil, err
	}

	p := utils.ValidatePagination(query.Pagination.Page, query.Pagination.PageSize)
	users, total, err := uc.users.ListByOrganization(ctx, query.OrganizationID, p.Offset(), p.PageSize)
	if err != nil {
		return nil, err
	}
	return &ListStaffResult{Staff: dto.ToStaffDTOList(users), Total: total}, nil
}
