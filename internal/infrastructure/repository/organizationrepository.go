package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gymstack/internal/domain/organization"
	"gymstack/internal/infrastructure/persistence/mappers"
	"gymstack/internal/infrastructure/persistence/models"
	"gymstack/internal/shared/db"
	apperrors "gymstack/internal/shared/errors"
	"gymstack/internal/shared/logger"
)

type OrganizationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.OrganizationMapper
	logger logger.Interface
}

func NewOrganizationRepository(database *gorm.DB, logger logger.Interface) organization.Repository {
	return &OrganizationRepositoryImpl{
		db:     database,
		mapper: mappers.NewOrganizationMapper(),
		logger: logger,
	}
}

func (r *OrganizationRepositoryImpl) Create(ctx context.Context, org *organization.Organization) error {
	model, err := r.mapper.ToModel(org)
	if err != nil {
		return fmt.Errorf("failed to map organization entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return organization.ErrDuplicateSlug
		}
		r.logger.Errorw("failed to create organization", "error", err, "slug", model.Slug)
		return fmt.Errorf("failed to create organization: %w", err)
	}

	if err := org.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set organization ID: %w", err)
	}
	return nil
}

func (r *OrganizationRepositoryImpl) GetByID(ctx context.Context, id uint) (*organization.Organization, error) {
	var model models.OrganizationModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, organization.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *OrganizationRepositoryImpl) GetBySID(ctx context.Context, sid string) (*organization.Organization, error) {
	var model models.OrganizationModel
	if err := db.GetTxFromContext(ctx, r.db).Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, organization.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *OrganizationRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*organization.Organization, error) {
	var model models.OrganizationModel
	if err := db.GetTxFromContext(ctx, r.db).Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, organization.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *OrganizationRepositoryImpl) Update(ctx context.Context, org *organization.Organization) error {
	model, err := r.mapper.ToModel(org)
	if err != nil {
		return fmt.Errorf("failed to map organization entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Save(model)
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return organization.ErrDuplicateSlug
		}
		return fmt.Errorf("failed to update organization: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return organization.ErrOrganizationNotFound
	}
	return nil
}

func (r *OrganizationRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.OrganizationModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete organization: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return organization.ErrOrganizationNotFound
	}
	r.logger.Infow("organization deleted", "organization_id", id)
	return nil
}

func (r *OrganizationRepositoryImpl) List(ctx context.Context, offset, limit int) ([]*organization.Organization, int64, error) {
	handle := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := handle.Model(&models.OrganizationModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count organizations: %w", err)
	}

	var modelList []*models.OrganizationModel
	query := handle.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list organizations: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}
