package usecases

import (
	"context"

	"gymstack/internal/application/authz"
	"gymstack/internal/application/plan/dto"
	"gymstack/internal/domain/permission"
	"gymstack/internal/domain/plan"
	"gymstack/internal/shared/utils"
)

type ListPlansQuery struct {
	ActorRole      permission.Role
	OrganizationID uint
	Pagination     utils.Pagination
}

type ListPlansResult struct {
	Plans []*dto.PlanDTO `json:"plans"`
	Total int64          `json:"total"`
}

type ListPlansUseCase struct {
	plans       plan.Repository
	permissions authz.PermissionService
}

func NewListPlansUseCase(plans plan.Repository, permissions authz.PermissionService) *ListPlansUseCase {
	return &ListPlansUseCase{plans: plans, permissions: permissions}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context, query ListPlansQuery) (*ListPlansResult, error) {
	if err := uc.permissions.Require(query.ActorRole, permission.PlansRead); err != nil {
		return nil, err
	}

	p := utils.ValidatePagination(query.Pagination.Page, query.Pagination.PageSize)
	plans, total, err := uc.plans.List(ctx, query.OrganizationID, p.Offset(), p.PageSize)
	if err != nil {
		return nil, err
	}
	return &ListPlansResult{Plans: dto.ToPlanDTOList(plans), Total: total}, nil
}
