package usecases

import (
	"context"
	"errors"

	"gymstack/internal/application/authz"
	"gymstack/internal/domain/announcement"
	"gymstack/internal/domain/permission"
	apperrors "gymstack/internal/shared/errors"
)

type DeleteAnnouncementCommand struct {
	ActorRole      permission.Role
	OrganizationID uint
	AnnouncementID uint
}

type DeleteAnnouncementUseCase struct {
	announcements announcement.Repository
	permissions   authz.PermissionService
}

func NewDeleteAnnouncementUseCase(announcements announcement.Repository, permissions authz.PermissionService) *DeleteAnnouncementUseCase {
	return &DeleteAnnouncementUseCase{announcements: announcements, permissions: permissions}
}

func (uc *DeleteAnnouncementUseCase) Execute(ctx context.Context, cmd DeleteAnnouncementCommand) error {
	if err := uc.permissions.Require(cmd.ActorRole, permission.AnnouncementsDelete); err != nil {
		return err
	}

	if err := uc.announcements.Delete(ctx, cmd.AnnouncementID, cmd.OrganizationID); err != nil {
		if errors.Is(err, announcement.ErrAnnouncementNotFound) {
			return apperrors.NewNotFoundError("announcement not found")
		}
		return err
	}
	return nil
}
