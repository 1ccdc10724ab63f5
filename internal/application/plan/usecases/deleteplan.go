package usecases

import (
	"context"
	"errors"

	"gymstack/internal/application/authz"
	"gymstack/internal/domain/permission"
	"gymstack/internal/domain/plan"
	apperrors "gymstack/internal/shared/errors"
	"gymstack/internal/shared/logger"
)

type DeletePlanCommand struct {
	ActorRole      permission.Role
	OrganizationID uint
	PlanID         uint
}

type DeletePlanUseCase struct {
	plans       plan.Repository
	permissions authz.PermissionService
	logger      logger.Interface
}

func NewDeletePlanUseCase(plans plan.Repository, permissions authz.PermissionService, logger logger.Interface) *DeletePlanUseCase {
	return &DeletePlanUseCase{plans: plans, permissions: permissions, logger: logger}
}

func (uc *DeletePlanUseCase) Execute(ctx context.Context, cmd DeletePlanCommand) error {
	if err := uc.permissions.Require(cmd.ActorRole, permission.PlansDelete); err != nil {
		return err
	}

	if err := uc.plans.Delete(ctx, cmd.PlanID, cmd.OrganizationID); err != nil {
		if errors.Is(err, plan.ErrPlanNotFound) {
			return apperrors.NewNotFoundError("plan not found")
		}
		return err
	}

	uc.logger.Infow("plan deleted", "organization_id", cmd.OrganizationID, "plan_id", cmd.PlanID)
	return nil
}
