package membership

import "context"

// Repository defines persistence operations for memberships. All lookups are
// tenant-scoped by organizationID. GetByID and FindOpenByMember must observe
// the enclosing transaction when one is carried in the context, so the
// one-open-membership invariant can be re-checked inside a unit of work.
type Repository interface {
	Create(ctx context.Context, m *Membership) error
	GetByID(ctx context.Context, membershipID, organizationID uint) (*Membership, error)
	// GetByIDIncludingDeleted also returns soft-deleted memberships, for restore.
	GetByIDIncludingDeleted(ctx context.Context, membershipID, organizationID uint) (*Membership, error)
	Update(ctx context.Context, m *Membership) error
	// FindOpenByMember returns the member's ACTIVE or PENDING membership, or nil.
	FindOpenByMember(ctx context.Context, memberID, organizationID uint) (*Membership, error)
	ListByOrganization(ctx context.Context, organizationID uint, offset, limit int) ([]*Membership, int64, error)
	ListByMember(ctx context.Context, memberID, organizationID uint) ([]*Membership, error)
}
