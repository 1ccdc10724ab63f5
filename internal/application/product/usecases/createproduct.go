package usecases

import (
	"context"

	"gymstack/internal/application/authz"
	"gymstack/internal/application/product/dto"
	"gymstack/internal/domain/permission"
	"gymstack/internal/domain/product"
	apperrors "gymstack/internal/shared/errors"
	"gymstack/internal/shared/logger"
)

type CreateProductCommand struct {
	ActorRole      permission.Role
	OrganizationID uint
	Name           string
	Description    string
	Price          uint64
	Currency       string
	Stock          int
}

type CreateProductUseCase struct {
	products    product.Repository
	permissions authz.PermissionService
	logger      logger.Interface
}

func NewCreateProductUseCase(products product.Repository, permissions authz.PermissionService, logger logger.Interface) *CreateProductUseCase {
	return &CreateProductUseCase{products: products, permissions: permissions, logger: logger}
}

func (uc *CreateProductUseCase) Execute(ctx context.Context, cmd CreateProductCommand) (*dto.ProductDTO, error) {
	if err := uc.permissions.Require(cmd.ActorRole, permission.ProductsCreate); err != nil {
		return nil, err
	}

	p, err := product.NewProduct(cmd.OrganizationID, cmd.Name, cmd.Description, cmd.Price, cmd.Currency, cmd.Stock)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.products.Create(ctx, p); err != nil {
		uc.logger.Errorw("failed to create product", "error", err, "organization_id", cmd.OrganizationID)
		return nil, err
	}

	uc.logger.Infow("product created", "organization_id", cmd.OrganizationID, "product_id", p.ID())
	return dto.ToProductDTO(p), nil
}
