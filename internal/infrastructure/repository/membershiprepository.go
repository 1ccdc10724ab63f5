package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gymstack/internal/domain/membership"
	"gymstack/internal/infrastructure/persistence/mappers"
	"gymstack/internal/infrastructure/persistence/models"
	"gymstack/internal/shared/db"
	"gymstack/internal/shared/logger"
)

// MembershipRepositoryImpl persists memberships. All reads resolve their
// handle through the context so invariant checks inside a unit of work see
// uncommitted writes of the same transaction.
type MembershipRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.MembershipMapper
	logger logger.Interface
}

func NewMembershipRepository(database *gorm.DB, logger logger.Interface) membership.Repository {
	return &MembershipRepositoryImpl{
		db:     database,
		mapper: mappers.NewMembershipMapper(),
		logger: logger,
	}
}

func (r *MembershipRepositoryImpl) Create(ctx context.Context, m *membership.Membership) error {
	model, err := r.mapper.ToModel(m)
	if err != nil {
		return fmt.Errorf("failed to map membership entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create membership", "error", err, "member_id", model.MemberID)
		return fmt.Errorf("failed to create membership: %w", err)
	}

	if err := m.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set membership ID: %w", err)
	}
	return nil
}

func (r *MembershipRepositoryImpl) GetByID(ctx context.Context, membershipID, organizationID uint) (*membership.Membership, error) {
	var model models.MembershipModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForOrganization(organizationID), db.NotDeleted()).
		First(&model, membershipID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, membership.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *MembershipRepositoryImpl) GetByIDIncludingDeleted(ctx context.Context, membershipID, organizationID uint) (*membership.Membership, error) {
	var model models.MembershipModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForOrganization(organizationID)).
		First(&model, membershipID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, membership.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *MembershipRepositoryImpl) Update(ctx context.Context, m *membership.Membership) error {
	model, err := r.mapper.ToModel(m)
	if err != nil {
		return fmt.Errorf("failed to map membership entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update membership: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return membership.ErrMembershipNotFound
	}
	return nil
}

func (r *MembershipRepositoryImpl) FindOpenByMember(ctx context.Context, memberID, organizationID uint) (*membership.Membership, error) {
	var model models.MembershipModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForOrganization(organizationID), db.NotDeleted()).
		Where("member_id = ? AND status IN ?", memberID,
			[]string{string(membership.StatusPending), string(membership.StatusActive)}).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find open membership: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *MembershipRepositoryImpl) ListByOrganization(ctx context.Context, organizationID uint, offset, limit int) ([]*membership.Membership, int64, error) {
	handle := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForOrganization(organizationID), db.NotDeleted())

	var total int64
	if err := handle.Model(&models.MembershipModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count memberships: %w", err)
	}

	var modelList []*models.MembershipModel
	query := handle.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list memberships: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *MembershipRepositoryImpl) ListByMember(ctx context.Context, memberID, organizationID uint) ([]*membership.Membership, error) {
	var modelList []*models.MembershipModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForOrganization(organizationID), db.NotDeleted()).
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships by member: %w", err)
	}
	return r.mapper.ToEntities(modelList)
}
