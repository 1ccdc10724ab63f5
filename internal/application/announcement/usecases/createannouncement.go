package usecases

import (
	"context"

	"gymstack/internal/application/announcement/dto"
	"gymstack/internal/application/authz"
	"gymstack/internal/domain/announcement"
	"gymstack/internal/domain/permission"
	apperrors "gymstack/internal/shared/errors"
	"gymstack/internal/shared/logger"
	"gymstack/internal/shared/services/markdown"
)

// CreateAnnouncementCommand publishes an org-scoped announcement. The body is
// markdown; the stored HTML is rendered and sanitized here.
type CreateAnnouncementCommand struct {
	ActorRole      permission.Role
	ActorUserID    uint
	OrganizationID uint
	Title          string
	Body           string
}

type CreateAnnouncementUseCase struct {
	announcements announcement.Repository
	markdown      markdown.Service
	permissions   authz.PermissionService
	logger        logger.Interface
}

func NewCreateAnnouncementUseCase(
	announcements announcement.Repository,
	markdownService markdown.Service,
	permissions authz.PermissionService,
	logger logger.Interface,
) *CreateAnnouncementUseCase {
	return &CreateAnnouncementUseCase{
		announcements: announcements,
		markdown:      markdownService,
		permissions:   permissions,
		logger:        logger,
	}
}

func (uc *CreateAnnouncementUseCase) Execute(ctx context.Context, cmd CreateAnnouncementCommand) (*dto.AnnouncementDTO, error) {
	if err := uc.permissions.Require(cmd.ActorRole, permission.AnnouncementsCreate); err != nil {
		return nil, err
	}

	bodyHTML, err := uc.markdown.ToHTMLSanitized(cmd.Body)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid markdown body", err.Error())
	}

	a, err := announcement.NewAnnouncement(cmd.OrganizationID, cmd.ActorUserID, cmd.Title, cmd.Body, bodyHTML)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.announcements.Create(ctx, a); err != nil {
		return nil, err
	}

	uc.logger.Infow("announcement published",
		"organization_id", cmd.OrganizationID,
		"announcement_id", a.ID(),
	)
	return dto.ToAnnouncementDTO(a), nil
}
