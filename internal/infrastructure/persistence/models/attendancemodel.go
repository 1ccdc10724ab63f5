package models

import (
	"time"

	"gymstack/internal/shared/constants"
)

// AttendanceModel is the persistence model for member check-ins. The
// composite index backs the one-check-in-per-business-day window query.
type AttendanceModel struct {
	ID             uint      `gorm:"primarykey"`
	OrganizationID uint      `gorm:"not null;index:idx_attendance_org"`
	MemberID       uint      `gorm:"not null;index:idx_attendance_member_time,priority:1"`
	CheckedInAt    time.Time `gorm:"not null;index:idx_attendance_member_time,priority:2"`
	RecordedBy     uint      `gorm:"not null"`
	CreatedAt      time.Time
}

func (AttendanceModel) TableName() string {
	return constants.TableAttendances
}
