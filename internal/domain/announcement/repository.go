package announcement

import "context"

type Repository interface {
	Create(ctx context.Context, a *Announcement) error
	GetByID(ctx context.Context, announcementID, organizationID uint) (*Announcement, error)
	Delete(ctx context.Context, announcementID, organizationID uint) error
	ListByOrganization(ctx context.Context, organizationID uint, offset, limit int) ([]*Announcement, int64, error)
}
