package models

import (
	"time"

	"gorm.io/gorm"

	"gymstack/internal/shared/constants"
)

// ProductModel is the persistence model for org-scoped sellable items.
type ProductModel struct {
	ID             uint   `gorm:"primarykey"`
	SID            string `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: prod_xxx"`
	OrganizationID uint   `gorm:"not null;index:idx_product_org"`
	Name           string `gorm:"not null;size:100"`
	Description    string `gorm:"type:text"`
	Price          uint64 `gorm:"not null;default:0"`
	Currency       string `gorm:"not null;size:3"`
	Stock          int    `gorm:"not null;default:0"`
	Version        int    `gorm:"not null;default:1"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (ProductModel) TableName() string {
	return constants.TableProducts
}

func (p *ProductModel) BeforeCreate(tx *gorm.DB) error {
	if p.Version == 0 {
		p.Version = 1
	}
	return nil
}
