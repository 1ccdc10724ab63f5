package usecases

import (
	"context"

	"gymstack/internal/application/authz"
	"gymstack/internal/application/product/dto"
	"gymstack/internal/domain/permission"
	"gymstack/internal/domain/product"
	"gymstack/internal/shared/utils"
)

type ListProductsQuery struct {
	ActorRole      permission.Role
	OrganizationID uint
	Pagination     utils.Pagination
}

type ListProductsResult struct {
	Products []*dto.ProductDTO `json:"products"`
	Total    int64             `json:"total"`
}

type ListProductsUseCase struct {
	products    product.Repository
	permissions authz.PermissionService
}

func NewListProductsUseCase(products product.Repository, permissions authz.PermissionService) *ListProductsUseCase {
	return &ListProductsUseCase{products: products, permissions: permissions}
}

func (uc *ListProductsUseCase) Execute(ctx context.Context, query ListProductsQuery) (*ListProductsResult, error) {
	if err := uc.permissions.Require(query.ActorRole, permission.ProductsRead); err != nil {
		return nil, err
	}

	p := utils.ValidatePagination(query.Pagination.Page, query.Pagination.PageSize)
	products, total, err := uc.products.List(ctx, query.OrganizationID, p.Offset(), p.PageSize)
	if err != nil {
		return nil, err
	}
	return &ListProductsResult{Products: dto.ToProductDTOList(products), Total: total}, nil
}
