package models

import (
	"time"

	"gorm.io/gorm"

	"gymstack/internal/shared/constants"
)

// SubscriptionModel is the persistence model for an organization's SaaS
// subscription. One row per organization.
type SubscriptionModel struct {
	ID                 uint   `gorm:"primarykey"`
	SID                string `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: sub_xxx"`
	OrganizationID     uint   `gorm:"not null;uniqueIndex:idx_subscription_org"`
	PlanSlug           string `gorm:"not null;size:50"`
	Status             string `gorm:"not null;size:20;index:idx_subscription_status"`
	PricePaid          uint64 `gorm:"not null;default:0"`
	Currency           string `gorm:"not null;size:3"`
	CurrentPeriodStart time.Time `gorm:"not null"`
	CurrentPeriodEnd   time.Time `gorm:"not null;index:idx_subscription_period_end"`
	CancelledAt        *time.Time
	Version            int `gorm:"not null;default:1"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}

func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.Version == 0 {
		s.Version = 1
	}
	return nil
}
