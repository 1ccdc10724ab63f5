package models

import (
	"time"

	"gorm.io/gorm"

	"gymstack/internal/shared/constants"
)

// MemberModel is the persistence model for gym members.
type MemberModel struct {
	ID             uint   `gorm:"primarykey"`
	SID            string `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: mem_xxx"`
	OrganizationID uint   `gorm:"not null;index:idx_member_org"`
	Name           string `gorm:"not null;size:100"`
	Email          string `gorm:"size:255;index:idx_member_email"`
	Phone          string `gorm:"size:50"`
	Notes          string `gorm:"type:text"`
	IsActive       bool   `gorm:"not null;default:false;index:idx_member_active"`
	Version        int    `gorm:"not null;default:1"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (MemberModel) TableName() string {
	return constants.TableMembers
}

func (m *MemberModel) BeforeCreate(tx *gorm.DB) error {
	if m.Version == 0 {
		m.Version = 1
	}
	return nil
}
