package usecases

import (
	"context"
	"errors"

	"gymstack/internal/application/authz"
	"gymstack/internal/application/member/dto"
	"gymstack/internal/domain/member"
	"gymstack/internal/domain/permission"
	apperrors "gymstack/internal/shared/errors"
)

// UpdateMemberCommand patches member contact fields. Empty strings leave
// current values in place. The active flag is deliberately absent here; it
// only moves together with membership writes.
type UpdateMemberCommand struct {
	ActorRole      permission.Role
	OrganizationID uint
	MemberID       uint
	Name           string
	Email          string
	Phone          string
	Notes          string
}

type UpdateMemberUseCase struct {
	members     member.Repository
	permissions authz.PermissionService
}

func NewUpdateMemberUseCase(members member.Repository, permissions authz.PermissionService) *UpdateMemberUseCase {
	return &UpdateMemberUseCase{members: members, permissions: permissions}
}

func (uc *UpdateMemberUseCase) Execute(ctx context.Context, cmd UpdateMemberCommand) (*dto.MemberDTO, error) {
	if err := uc.permissions.Require(cmd.ActorRole, permission.MembersUpdate); err != nil {
		return nil, err
	}

	m, err := uc.members.GetByID(ctx, cmd.MemberID, cmd.OrganizationID)
	if err != nil {
		if errors.Is(err, member.ErrMemberNotFound) {
			return nil, apperrors.NewNotFoundError("member not found")
		}
		return nil, err
	}

	if err := m.UpdateContact(cmd.Name, cmd.Email, cmd.Phone, cmd.Notes); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.members.Update(ctx, m); err != nil {
		return nil, err
	}
	return dto.ToMemberDTO(m), nil
}
