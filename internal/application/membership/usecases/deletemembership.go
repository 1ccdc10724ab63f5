package usecases

import (
	"context"

	"gymstack/internal/application/authz"
	"gymstack/internal/application/uow"
	"gymstack/internal/domain/permission"
)

type DeleteMembershipCommand struct {
	ActorRole      permission.Role
	OrganizationID uint
	MembershipID   uint
}

type DeleteMembershipUseCase struct {
	uow         *uow.UnitOfWork
	permissions authz.PermissionService
}

func NewDeleteMembershipUseCase(unitOfWork *uow.UnitOfWork, permissions authz.PermissionService) *DeleteMembershipUseCase {
	return &DeleteMembershipUseCase{uow: unitOfWork, permissions: permissions}
}

func (uc *DeleteMembershipUseCase) Execute(ctx context.Context, cmd DeleteMembershipCommand) error {
	if err := uc.permissions.Require(cmd.ActorRole, permission.MembershipsDelete); err != nil {
		return err
	}
	return uc.uow.DeleteMembershipAndDeactivate(ctx, cmd.MembershipID, cmd.OrganizationID)
}
