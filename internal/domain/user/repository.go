package user

import "context"

// Repository defines persistence operations for staff users.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id uint) error
	ListByOrganization(ctx context.Context, organizationID uint, offset, limit int) ([]*User, int64, error)
	CountActiveByOrganization(ctx context.Context, organizationID uint) (int64, error)
}
