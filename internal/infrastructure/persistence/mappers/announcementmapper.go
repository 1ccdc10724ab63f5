package mappers

import (
	"fmt"

	"gymstack/internal/domain/announcement"
	"gymstack/internal/infrastructure/persistence/models"
)

type AnnouncementMapper interface {
	ToEntity(model *models.AnnouncementModel) (*announcement.Announcement, error)
	ToModel(entity *announcement.Announcement) (*models.AnnouncementModel, error)
	ToEntities(models []*models.AnnouncementModel) ([]*announcement.Announcement, error)
}

type announcementMapperImpl struct{}

func NewAnnouncementMapper() AnnouncementMapper {
	return &announcementMapperImpl{}
}

func (m *announcementMapperImpl) ToEntity(model *models.AnnouncementModel) (*announcement.Announcement, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := announcement.ReconstructAnnouncement(
		model.ID,
		model.OrganizationID,
		model.AuthorID,
		model.Title,
		model.Body,
		model.BodyHTML,
		model.PublishedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct announcement entity: %w", err)
	}
	return entity, nil
}

func (m *announcementMapperImpl) ToModel(entity *announcement.Announcement) (*models.AnnouncementModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.AnnouncementModel{
		ID:             entity.ID(),
		OrganizationID: entity.OrganizationID(),
		Title:          entity.Title(),
		Body:           entity.Body(),
		BodyHTML:       entity.BodyHTML(),
		AuthorID:       entity.AuthorID(),
		PublishedAt:    entity.PublishedAt(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}

func (m *announcementMapperImpl) ToEntities(modelList []*models.AnnouncementModel) ([]*announcement.Announcement, error) {
	entities := make([]*announcement.Announcement, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
