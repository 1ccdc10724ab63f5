package usecases

import (
	"context"

	"gymstack/internal/application/authz"
	"gymstack/internal/application/organization/dto"
	"gymstack/internal/application/uow"
	"gymstack/internal/domain/permission"
	"gymstack/internal/shared/logger"
)

type UpgradeOrganizationPlanCommand struct {
	ActorRole      permission.Role
	OrganizationID uint
	PlanSlug       string
	PricePaid      uint64
}

type UpgradeOrganizationPlanUseCase struct {
	uow         *uow.UnitOfWork
	permissions authz.PermissionService
	logger      logger.Interface
}

func NewUpgradeOrganizationPlanUseCase(
	unitOfWork *uow.UnitOfWork,
	permissions authz.PermissionService,
	logger logger.Interface,
) *UpgradeOrganizationPlanUseCase {
	return &UpgradeOrganizationPlanUseCase{
		uow:         unitOfWork,
		permissions: permissions,
		logger:      logger,
	}
}

func (uc *UpgradeOrganizationPlanUseCase) Execute(ctx context.Context, cmd UpgradeOrganizationPlanCommand) (*dto.OrganizationDTO, error) {
	if err := uc.permissions.Require(cmd.ActorRole, permission.OrganizationsBilling); err != nil {
		return nil, err
	}

	org, err := uc.uow.UpgradeOrganizationPlan(ctx, uow.UpgradeOrganizationPlanCommand{
		OrganizationID: cmd.OrganizationID,
		PlanSlug:       cmd.PlanSlug,
		PricePaid:      cmd.PricePaid,
	})
	if err != nil {
		return nil, err
	}
	return dto.ToOrganizationDTO(org), nil
}
