package usecases

import (
	"context"
	"errors"

	"gymstack/internal/application/authz"
	"gymstack/internal/application/staff/dto"
	"gymstack/internal/domain/permission"
	"gymstack/internal/domain/user"
	apperrors "gymstack/internal/shared/errors"
	"gymstack/internal/shared/logger"
)

// UpdateStaffRoleCommand changes a staff account's role within the actor's
// organization. Owner and system roles cannot be assigned this way.
type UpdateStaffRoleCommand struct {
	ActorRole      permission.Role
	OrganizationID uint
	UserID         uint
	Role           permission.Role
}

type UpdateStaffRoleUseCase struct {
	users       user.Repository
	permissions authz.PermissionService
	logger      logger.Interface
}

func NewUpdateStaffRoleUseCase(users user.Repository, permissions authz.PermissionService, logger logger.Interface) *UpdateStaffRoleUseCase {
	return &UpdateStaffRoleUseCase{users: users, permissions: permissions, logger: logger}
}

func (uc *UpdateStaffRoleUseCase) Execute(ctx context.Context, cmd UpdateStaffRoleCommand) (*dto.StaffDTO, error) {
	if err := uc.permissions.Require(cmd.ActorRole, permission.StaffUpdate); err != nil {
		return nil, err
	}
	if cmd.Role == permission.RoleGod || cmd.Role == permission.RoleOwner {
		return nil, apperrors.NewValidationError("invalid staff role", cmd.Role.String())
	}

	u, err := uc.users.GetByID(ctx, cmd.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, err
	}
	if orgID := u.OrganizationID(); orgID == nil || *orgID != cmd.OrganizationID {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	if u.Role() == permission.RoleOwner {
		return nil, apperrors.NewConflictError("cannot change the owner's role")
	}

	if err := u.ChangeRole(cmd.Role); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.users.Update(ctx, u); err != nil {
		return nil, err
	}

	uc.logger.Infow("staff role updated",
		"organization_id", cmd.OrganizationID,
		"user_id", cmd.UserID,
		"role", cmd.Role.String(),
	)
	return dto.ToStaffDTO(u), nil
}
