package usecases

import (
	"context"
	"errors"

	"gymstack/internal/application/authz"
	"gymstack/internal/application/product/dto"
	"gymstack/internal/domain/permission"
	"gymstack/internal/domain/product"
	apperrors "gymstack/internal/shared/errors"
)

// UpdateProductCommand patches product fields. StockDelta adjusts stock
// relative to the current count and is applied after the absolute Stock patch.
type UpdateProductCommand struct {
	ActorRole      permission.Role
	OrganizationID uint
	ProductID      uint
	Name           string
	Description    string
	Price          *uint64
	Stock          *int
	StockDelta     *int
}

type UpdateProductUseCase struct {
	products    product.Repository
	permissions authz.PermissionService
}

func NewUpdateProductUseCase(products product.Repository, permissions authz.PermissionService) *UpdateProductUseCase {
	return &UpdateProductUseCase{products: products, permissions: permissions}
}

func (uc *UpdateProductUseCase) Execute(ctx context.Context, cmd UpdateProductCommand) (*dto.ProductDTO, error) {
	if err := uc.permissions.Require(cmd.ActorRole, permission.ProductsUpdate); err != nil {
		return nil, err
	}

	p, err := uc.products.GetByID(ctx, cmd.ProductID, cmd.OrganizationID)
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			return nil, apperrors.NewNotFoundError("product not found")
		}
		return nil, err
	}

	if err := p.Update(cmd.Name, cmd.Description, cmd.Price, cmd.Stock); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if cmd.StockDelta != nil {
		if err := p.AdjustStock(*cmd.StockDelta); err != nil {
			return nil, apperrors.NewConflictError(err.Error())
		}
	}
	if err := uc.products.Update(ctx, p); err != nil {
		return nil, err
	}
	return dto.ToProductDTO(p), nil
}
