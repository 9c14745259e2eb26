package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAbsenceNotFound    = errors.New("absence request not found")
)
