package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/dashboard"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/handler/http/response"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/period"
)

type DashboardHandler interface {
	// GetSupervisorDashboard returns the KPIs and charts of the supervisor home
	GetSupervisorDashboard(w http.ResponseWriter, r *http.Request)
	// ListStations returns the admin station cards
	ListStations(w http.ResponseWriter, r *http.Request)
	GetStationDetail(w http.ResponseWriter, r *http.Request)
	// GetFinancialReport returns a station's revenue for harian/bulanan/tahunan
	GetFinancialReport(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetSupervisorDashboard handles GET /supervisor/dashboard?year=&month=
func (h *dashboardHandlerImpl) GetSupervisorDashboard(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindow(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	result, err := h.dashboardService.GetSupervisorDashboard(r.Context(), dashboard.SupervisorDashboardRequest{Window: window})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ListStations handles GET /admin/dashboard
func (h *dashboardHandlerImpl) ListStations(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.ListStations(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// GetStationDetail handles GET /admin/spbus/{id}
func (h *dashboardHandlerImpl) GetStationDetail(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetStationDetail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// GetFinancialReport handles GET /admin/spbus/{id}/financial?period=harian|bulanan|tahunan
func (h *dashboardHandlerImpl) GetFinancialReport(w http.ResponseWriter, r *http.Request) {
	req := dashboard.FinancialReportRequest{
		StationID:   chi.URLParam(r, "id"),
		Granularity: period.Granularity(r.URL.Query().Get("period")),
	}
	result, err := h.dashboardService.GetFinancialReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
