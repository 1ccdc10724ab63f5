package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gymstack/internal/shared/constants"
)

// OrganizationModel is the persistence model for tenant organizations.
// This is the anti-corruption layer between domain and database.
type OrganizationModel struct {
	ID               uint   `gorm:"primarykey"`
	SID              string `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: org_xxx"`
	Name             string `gorm:"not null;size:100"`
	Slug             string `gorm:"uniqueIndex;not null;size:100"`
	ImageURL         string `gorm:"size:500"`
	PlanSlug         string `gorm:"not null;size:50;index:idx_plan_slug"`
	PlanName         string `gorm:"size:100"`
	Config           datatypes.JSON
	StorageUsedBytes int64  `gorm:"not null;default:0"`
	Status           string `gorm:"not null;size:20;default:active"`
	Version          int    `gorm:"not null;default:1"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (OrganizationModel) TableName() string {
	return constants.TableOrganizations
}

func (o *OrganizationModel) BeforeCreate(tx *gorm.DB) error {
	if o.Version == 0 {
		o.Version = 1
	}
	return nil
}
