package usecases

import (
	"context"

	"gymstack/internal/application/authz"
	"gymstack/internal/application/membership/dto"
	"gymstack/internal/application/uow"
	"gymstack/internal/domain/permission"
)

type RestoreMembershipCommand struct {
	ActorRole      permission.Role
	OrganizationID uint
	MembershipID   uint
}

type RestoreMembershipUseCase struct {
	uow         *uow.UnitOfWork
	permissions authz.PermissionService
}

func NewRestoreMembershipUseCase(unitOfWork *uow.UnitOfWork, permissions authz.PermissionService) *RestoreMembershipUseCase {
	return &RestoreMembershipUseCase{uow: unitOfWork, permissions: permissions}
}

func (uc *RestoreMembershipUseCase) Execute(ctx context.Context, cmd RestoreMembershipCommand) (*dto.MembershipDTO, error) {
	if err := uc.permissions.Require(cmd.ActorRole, permission.MembershipsRestore); err != nil {
		return nil, err
	}

	restored, err := uc.uow.RestoreMembershipAndActivate(ctx, cmd.MembershipID, cmd.OrganizationID)
	if err != nil {
		return nil, err
	}
	return dto.ToMembershipDTO(restored), nil
}
