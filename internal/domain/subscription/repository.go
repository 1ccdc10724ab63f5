package subscription

import "context"

// Repository defines persistence operations for organization subscriptions.
type Repository interface {
	Create(ctx context.Context, s *Subscription) error
	GetByID(ctx context.Context, subID uint) (*Subscription, error)
	GetByOrganization(ctx context.Context, organizationID uint) (*Subscription, error)
	Update(ctx context.Context, s *Subscription) error
	DeleteByOrganization(ctx context.Context, organizationID uint) error
}
