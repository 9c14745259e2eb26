package dashboard

import (
	"github.com/shopspring/decimal"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/delivery"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/fuel"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/fuelsale"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/issue"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/period"
)

// ========== SUPERVISOR DASHBOARD ==========

type SupervisorDashboardRequest struct {
	Window period.Window
}

// SupervisorDashboardResponse is the combined response of the supervisor dashboard
type SupervisorDashboardResponse struct {
	Year             int              `json:"year,omitempty"`
	Month            int              `json:"month,omitempty"`
	KPI              KPI              `json:"kpi"`
	SalesByFuelType  []FuelTypeVolume `json:"sales_by_fuel_type"`
	StockComposition []StockSlice     `json:"stock_composition"`
	Tanks            []TankLevel      `json:"tanks"`
}

// KPI holds the headline numbers for the selected window
type KPI struct {
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalLiters       decimal.Decimal `json:"total_liters"`
	DeliveryCount     int             `json:"delivery_count"`
	QualityCheckCount int             `json:"quality_check_count"`
}

// FuelTypeVolume is one bar of the liters-by-fuel chart
type FuelTypeVolume struct {
	FuelType fuel.FuelType   `json:"fuel_type"`
	Name     string          `json:"name"`
	Liters   decimal.Decimal `json:"liters"`
}

// StockSlice is one slice of the stock composition pie chart
type StockSlice struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

type TankLevel struct {
	CodeTank      string          `json:"code_tank"`
	FuelType      fuel.FuelType   `json:"fuel_type"`
	Capacity      decimal.Decimal `json:"capacity"`
	CurrentVolume decimal.Decimal `json:"current_volume"`
	FillPercent   float64         `json:"fill_percent"`
}

// ========== ADMIN MONITORING ==========

// StationSummary is one card of the admin station overview
type StationSummary struct {
	ID            string `json:"id"`
	CodeSpbu      string `json:"code_spbu"`
	Address       string `json:"address"`
	EmployeeCount int    `json:"employee_count"`
	TankCount     int    `json:"tank_count"`
}

// StationDetail is a station with every collection the monitoring view shows.
type StationDetail struct {
	fuel.Station
	FuelSales       []fuelsale.FuelSale      `json:"fuelSale,omitempty"`
	Damages         []issue.Damage           `json:"equipmentDamageReport,omitempty"`
	Issues          []issue.Report           `json:"issueReport,omitempty"`
	PumpUnits       []fuel.PumpUnit          `json:"pumpUnit,omitempty"`
	StockDeliveries []delivery.StockDelivery `json:"stockDelivery,omitempty"`
}

type FinancialReportRequest struct {
	StationID   string
	Granularity period.Granularity
}

// FinancialReportResponse is the revenue of one station over a preset period
type FinancialReportResponse struct {
	StationID        string              `json:"station_id"`
	CodeSpbu         string              `json:"code_spbu"`
	Period           period.Granularity  `json:"period"`
	TotalRevenue     decimal.Decimal     `json:"total_revenue"`
	TransactionCount int                 `json:"transaction_count"`
	Sales            []fuelsale.FuelSale `json:"sales"`
}
