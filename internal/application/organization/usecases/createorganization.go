package usecases

import (
	"context"

	"gymstack/internal/application/authz"
	"gymstack/internal/application/organization/dto"
	"gymstack/internal/application/uow"
	"gymstack/internal/domain/permission"
	apperrors "gymstack/internal/shared/errors"
	"gymstack/internal/shared/logger"
	"gymstack/internal/shared/utils"
)

// CreateOrganizationCommand onboards a new tenant. Only the system console
// role may do this. OwnerUserID attaches an existing orphan account as owner;
// when zero, a fresh owner account is created from the Owner* fields.
type CreateOrganizationCommand struct {
	ActorRole     permission.Role
	Name          string
	Slug          string
	PlanSlug      string
	OwnerUserID   uint
	OwnerEmail    string
	OwnerName     string
	OwnerPassword string
}

type CreateOrganizationResult struct {
	Organization *dto.OrganizationDTO `json:"organization"`
	Subscription *dto.SubscriptionDTO `json:"subscription"`
}

type CreateOrganizationUseCase struct {
	uow         *uow.UnitOfWork
	permissions authz.PermissionService
	bcryptCost  int
	logger      logger.Interface
}

func NewCreateOrganizationUseCase(
	unitOfWork *uow.UnitOfWork,
	permissions authz.PermissionService,
	bcryptCost int,
	logger logger.Interface,
) *CreateOrganizationUseCase {
	return &CreateOrganizationUseCase{
		uow:         unitOfWork,
		permissions: permissions,
		bcryptCost:  bcryptCost,
		logger:      logger,
	}
}

func (uc *CreateOrganizationUseCase) Execute(ctx context.Context, cmd CreateOrganizationCommand) (*CreateOrganizationResult, error) {
	if err := uc.permissions.Require(cmd.ActorRole, permission.OrganizationsCreate); err != nil {
		return nil, err
	}

	var passwordHash string
	if cmd.OwnerUserID == 0 {
		if cmd.OwnerPassword == "" {
			return nil, apperrors.NewValidationError("owner password is required")
		}
		var err error
		passwordHash, err = utils.HashPassword(cmd.OwnerPassword, uc.bcryptCost)
		if err != nil {
			uc.logger.Errorw("failed to hash owner password", "error", err)
			return nil, apperrors.NewInternalError("failed to hash password")
		}
	}

	result, err := uc.uow.CreateOrganizationWithOwner(ctx, uow.CreateOrganizationWithOwnerCommand{
		Name:              cmd.Name,
		Slug:              cmd.Slug,
		PlanSlug:          cmd.PlanSlug,
		OwnerUserID:       cmd.OwnerUserID,
		OwnerEmail:        cmd.OwnerEmail,
		OwnerName:         cmd.OwnerName,
		OwnerPasswordHash: passwordHash,
	})
	if err != nil {
		return nil, err
	}

	return &CreateOrganizationResult{
		Organization: dto.ToOrganizationDTO(result.Organization),
		Subscription: dto.ToSubscriptionDTO(result.Subscription),
	}, nil
}
