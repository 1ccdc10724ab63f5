package mappers

import (
	"fmt"

	"gymstack/internal/domain/plan"
	"gymstack/internal/infrastructure/persistence/models"
)

type PlanMapper interface {
	ToEntity(model *models.PlanModel) (*plan.Plan, error)
	ToModel(entity *plan.Plan) (*models.PlanModel, error)
	ToEntities(models []*models.PlanModel) ([]*plan.Plan, error)
}

type planMapperImpl struct{}

func NewPlanMapper() PlanMapper {
	return &planMapperImpl{}
}

func (m *planMapperImpl) ToEntity(model *models.PlanModel) (*plan.Plan, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := plan.ReconstructPlan(
		model.ID,
		model.SID,
		model.OrganizationID,
		model.Name,
		model.Slug,
		model.Description,
		model.Price,
		model.Currency,
		model.DurationDays,
		plan.Status(model.Status),
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct plan entity: %w", err)
	}
	return entity, nil
}

func (m *planMapperImpl) ToModel(entity *plan.Plan) (*models.PlanModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.PlanModel{
		ID:             entity.ID(),
		SID:            entity.SID(),
		OrganizationID: entity.OrganizationID(),
		Name:           entity.Name(),
		Slug:           entity.Slug(),
		Description:    entity.Description(),
		Price:          entity.Price(),
		Currency:       entity.Currency(),
		DurationDays:   entity.DurationDays(),
		Status:         string(entity.Status()),
		Version:        entity.Version(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}

func (m *planMapperImpl) ToEntities(modelList []*models.PlanModel) ([]*plan.Plan, error) {
	entities := make([]*plan.Plan, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
