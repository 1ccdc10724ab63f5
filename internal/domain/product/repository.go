package product

import "context"

type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, productID, organizationID uint) (*Product, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, productID, organizationID uint) error
	List(ctx context.Context, organizationID uint, offset, limit int) ([]*Product, int64, error)
}
