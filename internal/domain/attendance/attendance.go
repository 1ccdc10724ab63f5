package attendance

import (
	"fmt"
	"time"
)

// Attendance is a single member check-in. One check-in per member per
// business day.
type Attendance struct {
	id             uint
	organizationID uint
	memberID       uint
	checkedInAt    time.Time
	recordedBy     uint
	createdAt      time.Time
}

func NewAttendance(organizationID, memberID, recordedBy uint, checkedInAt time.Time) (*Attendance, error) {
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if memberID == 0 {
		return nil, fmt.Errorf("member ID is required")
	}
	if checkedInAt.IsZero() {
		checkedInAt = time.Now()
	}

	return &Attendance{
		organizationID: organizationID,
		memberID:       memberID,
		checkedInAt:    checkedInAt,
		recordedBy:     recordedBy,
		createdAt:      time.Now(),
	}, nil
}

func ReconstructAttendance(attendanceID, organizationID, memberID, recordedBy uint, checkedInAt, createdAt time.Time) (*Attendance, error) {
	if attendanceID == 0 {
		return nil, fmt.Errorf("attendance ID cannot be zero")
	}
	return &Attendance{
		id:             attendanceID,
		organizationID: organizationID,
		memberID:       memberID,
		checkedInAt:    checkedInAt,
		recordedBy:     recordedBy,
		createdAt:      createdAt,
	}, nil
}

func (a *Attendance) ID() uint              { return a.id }
func (a *Attendance) OrganizationID() uint  { return a.organizationID }
func (a *Attendance) MemberID() uint        { return a.memberID }
func (a *Attendance) CheckedInAt() time.Time { return a.checkedInAt }
func (a *Attendance) RecordedBy() uint      { return a.recordedBy }
func (a *Attendance) CreatedAt() time.Time  { return a.createdAt }

func (a *Attendance) SetID(attendanceID uint) error {
	if a.id != 0 {
		return fmt.Errorf("attendance ID is already set")
	}
	if attendanceID == 0 {
		return fmt.Errorf("attendance ID cannot be zero")
	}
	a.id = attendanceID
	return nil
}
