package mappers

import (
	"fmt"

	"gymstack/internal/domain/membership"
	"gymstack/internal/infrastructure/persistence/models"
)

type MembershipMapper interface {
	ToEntity(model *models.MembershipModel) (*membership.Membership, error)
	ToModel(entity *membership.Membership) (*models.MembershipModel, error)
	ToEntities(models []*models.MembershipModel) ([]*membership.Membership, error)
}

type membershipMapperImpl struct{}

func NewMembershipMapper() MembershipMapper {
	return &membershipMapperImpl{}
}

func (m *membershipMapperImpl) ToEntity(model *models.MembershipModel) (*membership.Membership, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := membership.ReconstructMembership(
		model.ID,
		model.SID,
		model.OrganizationID,
		model.MemberID,
		model.PlanID,
		membership.Status(model.Status),
		model.PricePaid,
		model.Currency,
		model.StartDate,
		model.EndDate,
		model.DeletedAt,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct membership entity: %w", err)
	}
	return entity, nil
}

func (m *membershipMapperImpl) ToModel(entity *membership.Membership) (*models.MembershipModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.MembershipModel{
		ID:             entity.ID(),
		SID:            entity.SID(),
		OrganizationID: entity.OrganizationID(),
		MemberID:       entity.MemberID(),
		PlanID:         entity.PlanID(),
		Status:         string(entity.Status()),
		PricePaid:      entity.PricePaid(),
		Currency:       entity.Currency(),
		StartDate:      entity.StartDate(),
		EndDate:        entity.EndDate(),
		DeletedAt:      entity.DeletedAt(),
		Version:        entity.Version(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}

func (m *membershipMapperImpl) ToEntities(modelList []*models.MembershipModel) ([]*membership.Membership, error) {
	entities := make([]*membership.Membership, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
