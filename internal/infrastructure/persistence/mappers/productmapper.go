package mappers

import (
	"fmt"

	"gymstack/internal/domain/product"
	"gymstack/internal/infrastructure/persistence/models"
)

type ProductMapper interface {
	ToEntity(model *models.ProductModel) (*product.Product, error)
	ToModel(entity *product.Product) (*models.ProductModel, error)
	ToEntities(models []*models.ProductModel) ([]*product.Product, error)
}

type productMapperImpl struct{}

func NewProductMapper() ProductMapper {
	return &productMapperImpl{}
}

func (m *productMapperImpl) ToEntity(model *models.ProductModel) (*product.Product, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := product.ReconstructProduct(
		model.ID,
		model.SID,
		model.OrganizationID,
		model.Name,
		model.Description,
		model.Price,
		model.Currency,
		model.Stock,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct product entity: %w", err)
	}
	return entity, nil
}

func (m *productMapperImpl) ToModel(entity *product.Product) (*models.ProductModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.ProductModel{
		ID:             entity.ID(),
		SID:            entity.SID(),
		OrganizationID: entity.OrganizationID(),
		Name:           entity.Name(),
		Description:    entity.Description(),
		Price:          entity.Price(),
		Currency:       entity.Currency(),
		Stock:          entity.Stock(),
		Version:        entity.Version(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}

func (m *productMapperImpl) ToEntities(modelList []*models.ProductModel) ([]*product.Product, error) {
	entities := make([]*product.Product, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
