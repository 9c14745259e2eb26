package http

import (
	"net/http"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/attendance"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ListAttendances(w http.ResponseWriter, r *http.Request)
	ListAbsences(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// ListAttendances handles GET /supervisor/employee/attendances
func (h *attendanceHandlerImpl) ListAttendances(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindow(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	list, err := h.attendanceService.ListAttendances(r.Context(), window)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, list)
}

// ListAbsences handles GET /supervisor/employee/absences
func (h *attendanceHandlerImpl) ListAbsences(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindow(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	list, err := h.attendanceService.ListAbsences(r.Context(), window)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, list)
}
