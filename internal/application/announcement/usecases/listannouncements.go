package usecases

import (
	"context"

	"gymstack/internal/application/announcement/dto"
	"gymstack/internal/application/authz"
	"gymstack/internal/domain/announcement"
	"gymstack/internal/domain/permission"
	"gymstack/internal/shared/utils"
)

type ListAnnouncementsQuery struct {
	ActorRole      permission.Role
	OrganizationID uint
	Pagination     utils.Pagination
}

type ListAnnouncementsResult struct {
	Announcements []*dto.AnnouncementDTO `json:"announcements"`
	Total         int64                  `json:"total"`
}

type ListAnnouncementsUseCase struct {
	announcements announcement.Repository
	permissions   authz.PermissionService
}

func NewListAnnouncementsUseCase(announcements announcement.Repository, permissions authz.PermissionService) *ListAnnouncementsUseCase {
	return &ListAnnouncementsUseCase{announcements: announcements, permissions: permissions}
}

func (uc *ListAnnouncementsUseCase) Execute(ctx context.Context, query ListAnnouncementsQuery) (*ListAnnouncementsResult, error) {
	if err := uc.permissions.Require(query.ActorRole, permission.AnnouncementsRead); err != nil {
		return nil, err
	}

	p := utils.ValidatePagination(query.Pagination.Page, query.Pagination.PageSize)
	items, total, err := uc.announcements.ListByOrganization(ctx, query.OrganizationID, p.Offset(), p.PageSize)
	if err != nil {
		return nil, err
	}
	return &ListAnnouncementsResult{Announcements: dto.ToAnnouncementDTOList(items), Total: total}, nil
}
