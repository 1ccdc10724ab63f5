package plan

import "context"

// Repository defines persistence operations for gym plans, tenant-scoped.
type Repository interface {
	Create(ctx context.Context, p *Plan) error
	GetByID(ctx context.Context, planID, organizationID uint) (*Plan, error)
	GetBySlug(ctx context.Context, slug string, organizationID uint) (*Plan, error)
	Update(ctx context.Context, p *Plan) error
	Delete(ctx context.Context, planID, organizationID uint) error
	List(ctx context.Context, organizationID uint, offset, limit int) ([]*Plan, int64, error)
}
