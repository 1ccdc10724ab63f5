package models

import (
	"time"

	"gorm.io/gorm"

	"gymstack/internal/shared/constants"
)

// MembershipModel is the persistence model for memberships. DeletedAt is a
// plain nullable timestamp rather than gorm.DeletedAt so restore can read and
// clear it explicitly.
type MembershipModel struct {
	ID             uint   `gorm:"primarykey"`
	SID            string `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: ms_xxx"`
	OrganizationID uint   `gorm:"not null;index:idx_membership_org"`
	MemberID       uint   `gorm:"not null;index:idx_membership_member"`
	PlanID         uint   `gorm:"not null;index:idx_membership_plan"`
	Status         string `gorm:"not null;size:20;index:idx_membership_status"`
	PricePaid      uint64 `gorm:"not null;default:0"`
	Currency       string `gorm:"not null;size:3"`
	StartDate      time.Time `gorm:"not null"`
	EndDate        time.Time `gorm:"not null;index:idx_membership_end"`
	DeletedAt      *time.Time `gorm:"index:idx_membership_deleted"`
	Version        int `gorm:"not null;default:1"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (MembershipModel) TableName() string {
	return constants.TableMemberships
}

func (m *MembershipModel) BeforeCreate(tx *gorm.DB) error {
	if m.Version == 0 {
		m.Version = 1
	}
	return nil
}
