package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"gymstack/internal/domain/attendance"
	"gymstack/internal/infrastructure/persistence/mappers"
	"gymstack/internal/infrastructure/persistence/models"
	"gymstack/internal/shared/db"
)

type AttendanceRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AttendanceMapper
}

func NewAttendanceRepository(database *gorm.DB) attendance.Repository {
	return &AttendanceRepositoryImpl{
		db:     database,
		mapper: mappers.NewAttendanceMapper(),
	}
}

func (r *AttendanceRepositoryImpl) Create(ctx context.Context, a *attendance.Attendance) error {
	model, err := r.mapper.ToModel(a)
	if err != nil {
		return fmt.Errorf("failed to map attendance entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create attendance: %w", err)
	}

	if err := a.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set attendance ID: %w", err)
	}
	return nil
}

func (r *AttendanceRepositoryImpl) ExistsInWindow(ctx context.Context, memberID, organizationID uint, start, end time.Time) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.AttendanceModel{}).
		Scopes(db.ForOrganization(organizationID)).
		Where("member_id = ? AND checked_in_at >= ? AND checked_in_at < ?", memberID, start, end).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check attendance window: %w", err)
	}
	return count > 0, nil
}

func (r *AttendanceRepositoryImpl) ListByOrganization(ctx context.Context, organizationID uint, offset, limit int) ([]*attendance.Attendance, int64, error) {
	handle := db.GetTxFromContext(ctx, r.db).Scopes(db.ForOrganization(organizationID))

	var total int64
	if err := handle.Model(&models.AttendanceModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	var modelList []*models.AttendanceModel
	query := handle.Order("checked_in_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *AttendanceRepositoryImpl) ListByMember(ctx context.Context, memberID, organizationID uint, offset, limit int) ([]*attendance.Attendance, int64, error) {
	handle := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForOrganization(organizationID)).
		Where("member_id = ?", memberID)

	var total int64
	if err := handle.Model(&models.AttendanceModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	var modelList []*models.AttendanceModel
	query := handle.Order("checked_in_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}
