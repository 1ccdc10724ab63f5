package models

import (
	"time"

	"gymstack/internal/shared/constants"
)

// AnnouncementModel is the persistence model for dashboard notices. Body is
// the authored markdown, BodyHTML the sanitized rendering.
type AnnouncementModel struct {
	ID             uint   `gorm:"primarykey"`
	OrganizationID uint   `gorm:"not null;index:idx_announcement_org"`
	Title          string `gorm:"not null;size:200"`
	Body           string `gorm:"type:text;not null"`
	BodyHTML       string `gorm:"type:text"`
	AuthorID       uint   `gorm:"not null"`
	PublishedAt    time.Time `gorm:"not null;index:idx_announcement_published"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (AnnouncementModel) TableName() string {
	return constants.TableAnnouncements
}
