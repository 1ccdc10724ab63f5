package usecases

import (
	"context"
	"errors"

	"gymstack/internal/application/authz"
	"gymstack/internal/application/plan/dto"
	"gymstack/internal/domain/permission"
	"gymstack/internal/domain/plan"
	apperrors "gymstack/internal/shared/errors"
)

// UpdatePlanCommand patches plan fields. Nil pointers and empty strings leave
// current values; Archive retires the plan from new memberships.
type UpdatePlanCommand struct {
	ActorRole      permission.Role
	OrganizationID uint
	PlanID         uint
	Name           string
	Description    string
	Price          *uint64
	DurationDays   *int
	Archive        bool
}

type UpdatePlanUseCase struct {
	plans       plan.Repository
	permissions authz.PermissionService
}

func NewUpdatePlanUseCase(plans plan.Repository, permissions authz.PermissionService) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{plans: plans, permissions: permissions}
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*dto.PlanDTO, error) {
	if err := uc.permissions.Require(cmd.ActorRole, permission.PlansUpdate); err != nil {
		return nil, err
	}

	p, err := uc.plans.GetByID(ctx, cmd.PlanID, cmd.OrganizationID)
	if err != nil {
		if errors.Is(err, plan.ErrPlanNotFound) {
			return nil, apperrors.NewNotFoundError("plan not found")
		}
		return nil, err
	}

	if err := p.Update(cmd.Name, cmd.Description, cmd.Price, cmd.DurationDays); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if cmd.Archive {
		p.Archive()
	}
	if err := uc.plans.Update(ctx, p); err != nil {
		return nil, err
	}
	return dto.ToPlanDTO(p), nil
}
