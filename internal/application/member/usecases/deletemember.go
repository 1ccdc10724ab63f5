package usecases

import (
	"context"
	"errors"

	"gymstack/internal/application/authz"
	"gymstack/internal/domain/member"
	"gymstack/internal/domain/membership"
	"gymstack/internal/domain/permission"
	apperrors "gymstack/internal/shared/errors"
	"gymstack/internal/shared/logger"
)

// DeleteMemberCommand removes a member. Refused while the member still holds
// an open membership; the membership must be cancelled or deleted first.
type DeleteMemberCommand struct {
	ActorRole      permission.Role
	OrganizationID uint
	MemberID       uint
}

type DeleteMemberUseCase struct {
	members     member.Repository
	memberships membership.Repository
	permissions authz.PermissionService
	logger      logger.Interface
}

func NewDeleteMemberUseCase(
	members member.Repository,
	memberships membership.Repository,
	permissions authz.PermissionService,
	logger logger.Interface,
) *DeleteMemberUseCase {
	return &DeleteMemberUseCase{
		members:     members,
		memberships: memberships,
		permissions: permissions,
		logger:      logger,
	}
}

func (uc *DeleteMemberUseCase) Execute(ctx context.Context, cmd DeleteMemberCommand) error {
	if err := uc.permissions.Require(cmd.ActorRole, permission.MembersDelete); err != nil {
		return err
	}

	if _, err := uc.members.GetByID(ctx, cmd.MemberID, cmd.OrganizationID); err != nil {
		if errors.Is(err, member.ErrMemberNotFound) {
			return apperrors.NewNotFoundError("member not found")
		}
		return err
	}

	open, err := uc.memberships.FindOpenByMember(ctx, cmd.MemberID, cmd.OrganizationID)
	if err != nil {
		return err
	}
	if open != nil {
		return apperrors.NewConflictError(member.ErrMemberHasOpenMembership.Error())
	}

	if err := uc.members.Delete(ctx, cmd.MemberID, cmd.OrganizationID); err != nil {
		return err
	}

	uc.logger.Infow("member deleted",
		"organization_id", cmd.OrganizationID,
		"member_id", cmd.MemberID,
	)
	return nil
}
