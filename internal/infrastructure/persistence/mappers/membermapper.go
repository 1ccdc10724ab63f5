package mappers

import (
	"fmt"

	"gymstack/internal/domain/member"
	"gymstack/internal/infrastructure/persistence/models"
)

type MemberMapper interface {
	ToEntity(model *models.MemberModel) (*member.Member, error)
	ToModel(entity *member.Member) (*models.MemberModel, error)
	ToEntities(models []*models.MemberModel) ([]*member.Member, error)
}

type memberMapperImpl struct{}

func NewMemberMapper() MemberMapper {
	return &memberMapperImpl{}
}

func (m *memberMapperImpl) ToEntity(model *models.MemberModel) (*member.Member, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := member.ReconstructMember(
		model.ID,
		model.SID,
		model.OrganizationID,
		model.Name,
		model.Email,
		model.Phone,
		model.Notes,
		model.IsActive,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct member entity: %w", err)
	}
	return entity, nil
}

func (m *memberMapperImpl) ToModel(entity *member.Member) (*models.MemberModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.MemberModel{
		ID:             entity.ID(),
		SID:            entity.SID(),
		OrganizationID: entity.OrganizationID(),
		Name:           entity.Name(),
		Email:          entity.Email(),
		Phone:          entity.Phone(),
		Notes:          entity.Notes(),
		IsActive:       entity.IsActive(),
		Version:        entity.Version(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}

func (m *memberMapperImpl) ToEntities(modelList []*models.MemberModel) ([]*member.Member, error) {
	entities := make([]*member.Member, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
