package usecases

import (
	"context"
	"errors"

	"gymstack/internal/application/authz"
	"gymstack/internal/domain/permission"
	"gymstack/internal/domain/product"
	apperrors "gymstack/internal/shared/errors"
	"gymstack/internal/shared/logger"
)

type DeleteProductCommand struct {
	ActorRole      permission.Role
	OrganizationID uint
	ProductID      uint
}

type DeleteProductUseCase struct {
	products    product.Repository
	permissions authz.PermissionService
	logger      logger.Interface
}

func NewDeleteProductUseCase(products product.Repository, permissions authz.PermissionService, logger logger.Interface) *DeleteProductUseCase {
	return &DeleteProductUseCase{products: products, permissions: permissions, logger: logger}
}

func (uc *DeleteProductUseCase) Execute(ctx context.Context, cmd DeleteProductCommand) error {
	if err := uc.permissions.Require(cmd.ActorRole, permission.ProductsDelete); err != nil {
		return err
	}

	if err := uc.products.Delete(ctx, cmd.ProductID, cmd.OrganizationID); err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			return apperrors.NewNotFoundError("product not found")
		}
		return err
	}

	uc.logger.Infow("product deleted", "organization_id", cmd.OrganizationID, "product_id", cmd.ProductID)
	return nil
}
