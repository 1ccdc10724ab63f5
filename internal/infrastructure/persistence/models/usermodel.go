package models

import (
	"time"

	"gorm.io/gorm"

	"gymstack/internal/shared/constants"
)

// UserModel is the persistence model for staff accounts. OrganizationID is
// nullable for orphan accounts awaiting onboarding.
type UserModel struct {
	ID             uint   `gorm:"primarykey"`
	OrganizationID *uint  `gorm:"index:idx_user_org"`
	Email          string `gorm:"uniqueIndex;not null;size:255"`
	Name           string `gorm:"not null;size:100"`
	PasswordHash   string `gorm:"not null;size:255"`
	Role           string `gorm:"size:20"`
	IsActive       bool   `gorm:"not null;default:true"`
	Version        int    `gorm:"not null;default:1"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (UserModel) TableName() string {
	return constants.TableUsers
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.Version == 0 {
		u.Version = 1
	}
	return nil
}
