package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"gymstack/internal/domain/organization"
	"gymstack/internal/infrastructure/persistence/models"
)

type OrganizationMapper interface {
	ToEntity(model *models.OrganizationModel) (*organization.Organization, error)
	ToModel(entity *organization.Organization) (*models.OrganizationModel, error)
	ToEntities(models []*models.OrganizationModel) ([]*organization.Organization, error)
}

type organizationMapperImpl struct{}

func NewOrganizationMapper() OrganizationMapper {
	return &organizationMapperImpl{}
}

func (m *organizationMapperImpl) ToEntity(model *models.OrganizationModel) (*organization.Organization, error) {
	if model == nil {
		return nil, nil
	}

	var config map[string]any
	if model.Config != nil {
		if err := json.Unmarshal(model.Config, &config); err != nil {
			return nil, fmt.Errorf("failed to unmarshal organization config: %w", err)
		}
	}

	entity, err := organization.ReconstructOrganization(
		model.ID,
		model.SID,
		model.Name,
		model.Slug,
		model.ImageURL,
		model.PlanSlug,
		model.PlanName,
		config,
		model.StorageUsedBytes,
		organization.Status(model.Status),
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct organization entity: %w", err)
	}
	return entity, nil
}

func (m *organizationMapperImpl) ToModel(entity *organization.Organization) (*models.OrganizationModel, error) {
	if entity == nil {
		return nil, nil
	}

	var configJSON datatypes.JSON
	if config := entity.Config(); len(config) > 0 {
		data, err := json.Marshal(config)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal organization config: %w", err)
		}
		configJSON = data
	}

	return &models.OrganizationModel{
		ID:               entity.ID(),
		SID:              entity.SID(),
		Name:             entity.Name(),
		Slug:             entity.Slug(),
		ImageURL:         entity.ImageURL(),
		PlanSlug:         entity.PlanSlug(),
		PlanName:         entity.PlanName(),
		Config:           configJSON,
		StorageUsedBytes: entity.StorageUsedBytes(),
		Status:           string(entity.Status()),
		Version:          entity.Version(),
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}, nil
}

func (m *organizationMapperImpl) ToEntities(modelList []*models.OrganizationModel) ([]*organization.Organization, error) {
	entities := make([]*organization.Organization, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
