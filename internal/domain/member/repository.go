package member

import "context"

// Repository defines persistence operations for members. Lookups that take an
// organizationID are tenant-scoped: they never return a member belonging to a
// different organization.
type Repository interface {
	Create(ctx context.Context, m *Member) error
	GetByID(ctx context.Context, memberID, organizationID uint) (*Member, error)
	GetBySID(ctx context.Context, sid string, organizationID uint) (*Member, error)
	Update(ctx context.Context, m *Member) error
	Delete(ctx context.Context, memberID, organizationID uint) error
	List(ctx context.Context, organizationID uint, offset, limit int) ([]*Member, int64, error)
	CountActiveByOrganization(ctx context.Context, organizationID uint) (int64, error)
}
