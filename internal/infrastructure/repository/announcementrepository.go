package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gymstack/internal/domain/announcement"
	"gymstack/internal/infrastructure/persistence/mappers"
	"gymstack/internal/infrastructure/persistence/models"
	"gymstack/internal/shared/db"
)

type AnnouncementRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AnnouncementMapper
}

func NewAnnouncementRepository(database *gorm.DB) announcement.Repository {
	return &AnnouncementRepositoryImpl{
		db:     database,
		mapper: mappers.NewAnnouncementMapper(),
	}
}

func (r *AnnouncementRepositoryImpl) Create(ctx context.Context, a *announcement.Announcement) error {
	model, err := r.mapper.ToModel(a)
	if err != nil {
		return fmt.Errorf("failed to map announcement entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create announcement: %w", err)
	}

	if err := a.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set announcement ID: %w", err)
	}
	return nil
}

func (r *AnnouncementRepositoryImpl) GetByID(ctx context.Context, announcementID, organizationID uint) (*announcement.Announcement, error) {
	var model models.AnnouncementModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForOrganization(organizationID)).
		First(&model, announcementID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, announcement.ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("failed to get announcement: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *AnnouncementRepositoryImpl) Delete(ctx context.Context, announcementID, organizationID uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForOrganization(organizationID)).
		Delete(&models.AnnouncementModel{}, announcementID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete announcement: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return announcement.ErrAnnouncementNotFound
	}
	return nil
}

func (r *AnnouncementRepositoryImpl) ListByOrganization(ctx context.Context, organizationID uint, offset, limit int) ([]*announcement.Announcement, int64, error) {
	handle := db.GetTxFromContext(ctx, r.db).Scopes(db.ForOrganization(organizationID))

	var total int64
	if err := handle.Model(&models.AnnouncementModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count announcements: %w", err)
	}

	var modelList []*models.AnnouncementModel
	query := handle.Order("published_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list announcements: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}
