package usecases

import (
	"context"

	"gymstack/internal/application/authz"
	"gymstack/internal/application/entitlement"
	"gymstack/internal/application/member/dto"
	"gymstack/internal/domain/member"
	"gymstack/internal/domain/permission"
	apperrors "gymstack/internal/shared/errors"
	"gymstack/internal/shared/logger"
)

type CreateMemberCommand struct {
	ActorRole      permission.Role
	OrganizationID uint
	Name           string
	Email          string
	Phone          string
}

// CreateMemberUseCase registers a gym member. Creation is gated on the
// tenant's active-member cap.
type CreateMemberUseCase struct {
	members      member.Repository
	permissions  authz.PermissionService
	entitlements entitlement.Service
	logger       logger.Interface
}

func NewCreateMemberUseCase(
	members member.Repository,
	permissions authz.PermissionService,
	entitlements entitlement.Service,
	logger logger.Interface,
) *CreateMemberUseCase {
	return &CreateMemberUseCase{
		members:      members,
		permissions:  permissions,
		entitlements: entitlements,
		logger:       logger,
	}
}

func (uc *CreateMemberUseCase) Execute(ctx context.Context, cmd CreateMemberCommand) (*dto.MemberDTO, error) {
	if err := uc.permissions.Require(cmd.ActorRole, permission.MembersCreate); err != nil {
		return nil, err
	}
	if err := uc.entitlements.RequireMemberLimit(ctx, cmd.OrganizationID); err != nil {
		return nil, err
	}

	m, err := member.NewMember(cmd.OrganizationID, cmd.Name, cmd.Email, cmd.Phone)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.members.Create(ctx, m); err != nil {
		uc.logger.Errorw("failed to create member", "error", err, "organization_id", cmd.OrganizationID)
		return nil, err
	}

	uc.logger.Infow("member created",
		"organization_id", cmd.OrganizationID,
		"member_id", m.ID(),
	)
	return dto.ToMemberDTO(m), nil
}
