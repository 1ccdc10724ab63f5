package usecases

import (
	"context"

	"gymstack/internal/application/authz"
	"gymstack/internal/application/membership/dto"
	"gymstack/internal/application/uow"
	"gymstack/internal/domain/permission"
)

type CancelMembershipCommand struct {
	ActorRole      permission.Role
	OrganizationID uint
	MembershipID   uint
}

type CancelMembershipUseCase struct {
	uow         *uow.UnitOfWork
	permissions authz.PermissionService
}

func NewCancelMembershipUseCase(unitOfWork *uow.UnitOfWork, permissions authz.PermissionService) *CancelMembershipUseCase {
	return &CancelMembershipUseCase{uow: unitOfWork, permissions: permissions}
}

func (uc *CancelMembershipUseCase) Execute(ctx context.Context, cmd CancelMembershipCommand) (*dto.MembershipDTO, error) {
	if err := uc.permissions.Require(cmd.ActorRole, permission.MembershipsCancel); err != nil {
		return nil, err
	}

	cancelled, err := uc.uow.CancelMembershipAndDeactivate(ctx, cmd.MembershipID, cmd.OrganizationID)
	if err != nil {
		return nil, err
	}
	return dto.ToMembershipDTO(cancelled), nil
}
