package attendance

import "context"

type AttendanceRepository interface {
	ListAttendances(ctx context.Context) ([]Attendance, error)
	ListAbsences(ctx context.Context) ([]Absence, error)
}
