// Package dto carries product data between the application and interface
// layers.
package dto

import (
	"time"

	"gymstack/internal/domain/product"
)

type ProductDTO struct {
	ID          uint      `json:"-"`
	SID         string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       uint64    `json:"price"`
	Currency    string    `json:"currency"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToProductDTO(p *product.Product) *ProductDTO {
	if p == nil {
		return nil
	}
	return &ProductDTO{
		ID:          p.ID(),
		SID:         p.SID(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price(),
		Currency:    p.Currency(),
		Stock:       p.Stock(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func ToProductDTOList(products []*product.Product) []*ProductDTO {
	out := make([]*ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductDTO(p))
	}
	return out
}
