package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gymstack/internal/domain/member"
	"gymstack/internal/infrastructure/persistence/mappers"
	"gymstack/internal/infrastructure/persistence/models"
	"gymstack/internal/shared/db"
	"gymstack/internal/shared/logger"
)

type MemberRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.MemberMapper
	logger logger.Interface
}

func NewMemberRepository(database *gorm.DB, logger logger.Interface) member.Repository {
	return &MemberRepositoryImpl{
		db:     database,
		mapper: mappers.NewMemberMapper(),
		logger: logger,
	}
}

func (r *MemberRepositoryImpl) Create(ctx context.Context, m *member.Member) error {
	model, err := r.mapper.ToModel(m)
	if err != nil {
		return fmt.Errorf("failed to map member entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create member", "error", err, "organization_id", model.OrganizationID)
		return fmt.Errorf("failed to create member: %w", err)
	}

	if err := m.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set member ID: %w", err)
	}
	return nil
}

func (r *MemberRepositoryImpl) GetByID(ctx context.Context, memberID, organizationID uint) (*member.Member, error) {
	var model models.MemberModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForOrganization(organizationID)).
		First(&model, memberID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, member.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *MemberRepositoryImpl) GetBySID(ctx context.Context, sid string, organizationID uint) (*member.Member, error) {
	var model models.MemberModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForOrganization(organizationID)).
		Where("sid = ?", sid).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, member.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *MemberRepositoryImpl) Update(ctx context.Context, m *member.Member) error {
	model, err := r.mapper.ToModel(m)
	if err != nil {
		return fmt.Errorf("failed to map member entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return member.ErrMemberNotFound
	}
	return nil
}

func (r *MemberRepositoryImpl) Delete(ctx context.Context, memberID, organizationID uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForOrganization(organizationID)).
		Delete(&models.MemberModel{}, memberID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return member.ErrMemberNotFound
	}
	return nil
}

func (r *MemberRepositoryImpl) List(ctx context.Context, organizationID uint, offset, limit int) ([]*member.Member, int64, error) {
	handle := db.GetTxFromContext(ctx, r.db).Scopes(db.ForOrganization(organizationID))

	var total int64
	if err := handle.Model(&models.MemberModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count members: %w", err)
	}

	var modelList []*models.MemberModel
	query := handle.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list members: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *MemberRepositoryImpl) CountActiveByOrganization(ctx context.Context, organizationID uint) (int64, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.MemberModel{}).
		Scopes(db.ForOrganization(organizationID)).
		Where("is_active = ?", true).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count active members: %w", err)
	}
	return count, nil
}
