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

type GetMemberQuery struct {
	ActorRole      permission.Role
	OrganizationID uint
	MemberID       uint
}

type GetMemberUseCase struct {
	members     member.Repository
	permissions authz.PermissionService
}

func NewGetMemberUseCase(members member.Repository, permissions authz.PermissionService) *GetMemberUseCase {
	return &GetMemberUseCase{members: members, permissions: permissions}
}

func (uc *GetMemberUseCase) Execute(ctx context.Context, query GetMemberQuery) (*dto.MemberDTO, error) {
	if err := uc.permissions.Require(query.ActorRole, permission.MembersRead); err != nil {
		return nil, err
	}

	m, err := uc.members.GetByID(ctx, query.MemberID, query.OrganizationID)
	if err != nil {
		if errors.Is(err, member.ErrMemberNotFound) {
			return nil, apperrors.NewNotFoundError("member not found")
		}
		return nil, err
	}
	return dto.ToMemberDTO(m), nil
}
