package upstream

import (
	"context"
	"fmt"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/attendance"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/apiclient"
)

type attendanceRepositoryImpl struct {
	client *apiclient.Client
}

func NewAttendanceRepository(client *apiclient.Client) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{client: client}
}

func (r *attendanceRepositoryImpl) ListAttendances(ctx context.Context) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	if err := r.client.Get(ctx, "/employee/attendances", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	return out, nil
}

func (r *attendanceRepositoryImpl) ListAbsences(ctx context.Context) ([]attendance.Absence, error) {
	var out []attendance.Absence
	if err := r.client.Get(ctx, "/employee/absences", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list absences: %w", err)
	}
	return out, nil
}
