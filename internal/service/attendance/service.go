package attendance

import (
	"context"
	"time"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/attendance"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/period"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	resolvePhoto func(string) string
	loc          *time.Location
}

// NewAttendanceService builds the service. resolvePhoto turns the media paths
// stored upstream into URLs the browser can load.
func NewAttendanceService(attendanceRepository attendance.AttendanceRepository, resolvePhoto func(string) string, loc *time.Location) attendance.AttendanceService {
	if loc == nil {
		loc = time.UTC
	}
	if resolvePhoto == nil {
		resolvePhoto = func(s string) string { return s }
	}
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		resolvePhoto:         resolvePhoto,
		loc:                  loc,
	}
}

// ListAttendances implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendances(ctx context.Context, w period.Window) ([]attendance.Attendance, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	list, err := a.AttendanceRepository.ListAttendances(ctx)
	if err != nil {
		return nil, err
	}
	list = period.Filter(list, w, a.loc, func(x attendance.Attendance) time.Time { return x.CreatedAt.Time })
	for i := range list {
		list[i].Photo = a.resolvePhoto(list[i].Photo)
	}
	return list, nil
}

// ListAbsences implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAbsences(ctx context.Context, w period.Window) ([]attendance.Absence, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	list, err := a.AttendanceRepository.ListAbsences(ctx)
	if err != nil {
		return nil, err
	}
	list = period.Filter(list, w, a.loc, func(x attendance.Absence) time.Time { return x.TanggalAwal.Time })
	for i := range list {
		list[i].Lampiran = a.resolvePhoto(list[i].Lampiran)
	}
	return list, nil
}
