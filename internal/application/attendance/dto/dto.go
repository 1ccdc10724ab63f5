// Package dto carries attendance data between the application and interface
// layers.
package dto

import (
	"time"

	"gymstack/internal/domain/attendance"
)

type AttendanceDTO struct {
	ID          uint      `json:"id"`
	MemberID    uint      `json:"member_id"`
	CheckedInAt time.Time `json:"checked_in_at"`
	RecordedBy  uint      `json:"recorded_by"`
}

func ToAttendanceDTO(a *attendance.Attendance) *AttendanceDTO {
	if a == nil {
		return nil
	}
	return &AttendanceDTO{
		ID:          a.ID(),
		MemberID:    a.MemberID(),
		CheckedInAt: a.CheckedInAt(),
		RecordedBy:  a.RecordedBy(),
	}
}

func ToAttendanceDTOList(records []*attendance.Attendance) []*AttendanceDTO {
	out := make([]*AttendanceDTO, 0, len(records))
	for _, a := range records {
		out = append(out, ToAttendanceDTO(a))
	}
	return out
}
