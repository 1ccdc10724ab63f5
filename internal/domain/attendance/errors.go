package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")

	// ErrAlreadyCheckedIn is returned when the member already checked in on
	// the same business day
	ErrAlreadyCheckedIn = errors.New("member already checked in today")
)
