package attendance

import (
	"context"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/period"
)

type AttendanceService interface {
	ListAttendances(ctx context.Context, w period.Window) ([]Attendance, error)
	ListAbsences(ctx context.Context, w period.Window) ([]Absence, error)
}
