package models

import (
	"time"

	"gorm.io/gorm"

	"gymstack/internal/shared/constants"
)

// PlanModel is the persistence model for gym pricing plans. The slug is
// unique per organization, not globally.
type PlanModel struct {
	ID             uint   `gorm:"primarykey"`
	SID            string `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: plan_xxx"`
	OrganizationID uint   `gorm:"not null;uniqueIndex:idx_plan_org_slug,priority:1"`
	Name           string `gorm:"not null;size:100"`
	Slug           string `gorm:"not null;size:100;uniqueIndex:idx_plan_org_slug,priority:2"`
	Description    string `gorm:"type:text"`
	Price          uint64 `gorm:"not null;default:0"`
	Currency       string `gorm:"not null;size:3"`
	DurationDays   int    `gorm:"not null"`
	Status         string `gorm:"not null;size:20;default:active"`
	Version        int    `gorm:"not null;default:1"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (PlanModel) TableName() string {
	return constants.TablePlans
}

func (p *PlanModel) BeforeCreate(tx *gorm.DB) error {
	if p.Version == 0 {
		p.Version = 1
	}
	return nil
}
