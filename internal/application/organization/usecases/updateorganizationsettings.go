package usecases

import (
	"context"

	"gymstack/internal/application/authz"
	"gymstack/internal/application/organization/dto"
	"gymstack/internal/application/uow"
	"gymstack/internal/domain/permission"
)

// UpdateOrganizationSettingsCommand patches tenant settings. A nil ImageURL
// leaves the logo untouched; Config merges into the existing configuration.
type UpdateOrganizationSettingsCommand struct {
	ActorRole      permission.Role
	OrganizationID uint
	Name           string
	ImageURL       *string
	Config         map[string]any
}

type UpdateOrganizationSettingsUseCase struct {
	uow         *uow.UnitOfWork
	permissions authz.PermissionService
}

func NewUpdateOrganizationSettingsUseCase(
	unitOfWork *uow.UnitOfWork,
	permissions authz.PermissionService,
) *UpdateOrganizationSettingsUseCase {
	return &UpdateOrganizationSettingsUseCase{
		uow:         unitOfWork,
		permissions: permissions,
	}
}

func (uc *UpdateOrganizationSettingsUseCase) Execute(ctx context.Context, cmd UpdateOrganizationSettingsCommand) (*dto.OrganizationDTO, error) {
	if err := uc.permissions.Require(cmd.ActorRole, permission.OrganizationsUpdate); err != nil {
		return nil, err
	}

	org, err := uc.uow.UpdateOrganizationSettings(ctx, uow.UpdateOrganizationSettingsCommand{
		OrganizationID: cmd.OrganizationID,
		Name:           cmd.Name,
		ImageURL:       cmd.ImageURL,
		Config:         cmd.Config,
	})
	if err != nil {
		return nil, err
	}
	return dto.ToOrganizationDTO(org), nil
}
