package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetSupervisorDashboard fetches the station's records concurrently and derives the KPIs
	GetSupervisorDashboard(ctx context.Context, req SupervisorDashboardRequest) (*SupervisorDashboardResponse, error)

	// ListStations returns the admin overview cards
	ListStations(ctx context.Context) ([]StationSummary, error)

	GetStationDetail(ctx context.Context, id string) (*StationDetail, error)

	// GetFinancialReport filters a station's sales by a preset period
	GetFinancialReport(ctx context.Context, req FinancialReportRequest) (*FinancialReportResponse, error)
}
