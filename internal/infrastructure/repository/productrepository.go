package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gymstack/internal/domain/product"
	"gymstack/internal/infrastructure/persistence/mappers"
	"gymstack/internal/infrastructure/persistence/models"
	"gymstack/internal/shared/db"
)

type ProductRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ProductMapper
}

func NewProductRepository(database *gorm.DB) product.Repository {
	return &ProductRepositoryImpl{
		db:     database,
		mapper: mappers.NewProductMapper(),
	}
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, p *product.Product) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return fmt.Errorf("failed to map product entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set product ID: %w", err)
	}
	return nil
}

func (r *ProductRepositoryImpl) GetByID(ctx context.Context, productID, organizationID uint) (*product.Product, error) {
	var model models.ProductModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForOrganization(organizationID)).
		First(&model, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, product.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, p *product.Product) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return fmt.Errorf("failed to map product entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return product.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepositoryImpl) Delete(ctx context.Context, productID, organizationID uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForOrganization(organizationID)).
		Delete(&models.ProductModel{}, productID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return product.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepositoryImpl) List(ctx context.Context, organizationID uint, offset, limit int) ([]*product.Product, int64, error) {
	handle := db.GetTxFromContext(ctx, r.db).Scopes(db.ForOrganization(organizationID))

	var total int64
	if err := handle.Model(&models.ProductModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var modelList []*models.ProductModel
	query := handle.Order("name ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}
