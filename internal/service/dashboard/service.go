package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/dashboard"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/delivery"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/fuel"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/fuelsale"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/period"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	sales      fuelsale.FuelSaleRepository
	deliveries delivery.DeliveryRepository
	equipment  fuel.EquipmentRepository
	stations   fuel.StationRepository
	loc        *time.Location
	now        func() time.Time
}

func NewDashboardService(
	repo dashboard.DashboardRepository,
	sales fuelsale.FuelSaleRepository,
	deliveries delivery.DeliveryRepository,
	equipment fuel.EquipmentRepository,
	stations fuel.StationRepository,
	loc *time.Location,
) dashboard.DashboardService {
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		sales:               sales,
		deliveries:          deliveries,
		equipment:           equipment,
		stations:            stations,
		loc:                 loc,
		now:                 time.Now,
	}
}

// GetSupervisorDashboard fetches the four record collections and the tanks in
// parallel and derives every chart from them.
func (s *DashboardServiceImpl) GetSupervisorDashboard(ctx context.Context, req dashboard.SupervisorDashboardRequest) (*dashboard.SupervisorDashboardResponse, error) {
	if err := req.Window.Validate(); err != nil {
		return nil, fmt.Errorf("invalid window: %w", err)
	}

	var (
		sales     []fuelsale.FuelSale
		drops     []delivery.TankDelivery
		qualities []delivery.FuelQuality
		stock     []delivery.StockDelivery
		tanks     []fuel.Tank
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		list, err := s.sales.List(gCtx)
		if err != nil {
			return err
		}
		sales = list
		return nil
	})

	g.Go(func() error {
		list, err := s.deliveries.ListTankDeliveries(gCtx)
		if err != nil {
			return err
		}
		drops = list
		return nil
	})

	g.Go(func() error {
		list, err := s.deliveries.ListFuelQualities(gCtx)
		if err != nil {
			return err
		}
		qualities = list
		return nil
	})

	g.Go(func() error {
		list, err := s.deliveries.ListStockDeliveries(gCtx)
		if err != nil {
			return err
		}
		stock = list
		return nil
	})

	g.Go(func() error {
		list, err := s.equipment.ListTanks(gCtx)
		if err != nil {
			return err
		}
		tanks = list
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load dashboard data: %w", err)
	}

	w := req.Window
	sales = period.Filter(sales, w, s.loc, func(x fuelsale.FuelSale) time.Time { return x.Tanggal.Time })
	drops = period.Filter(drops, w, s.loc, func(x delivery.TankDelivery) time.Time { return x.DeliveryDate.Time })
	qualities = period.Filter(qualities, w, s.loc, func(x delivery.FuelQuality) time.Time { return x.Tanggal.Time })
	stock = period.Filter(stock, w, s.loc, func(x delivery.StockDelivery) time.Time { return x.CreatedAt.Time })

	return &dashboard.SupervisorDashboardResponse{
		Year:             w.Year,
		Month:            w.Month,
		KPI:              Summarize(sales, len(drops), len(qualities)),
		SalesByFuelType:  SalesByFuelType(sales),
		StockComposition: StockComposition(stock),
		Tanks:            TankLevels(tanks),
	}, nil
}

// Summarize computes the headline numbers over already filtered sales.
func Summarize(sales []fuelsale.FuelSale, deliveries, qualityChecks int) dashboard.KPI {
	kpi := dashboard.KPI{
		TotalRevenue:      decimal.Zero,
		TotalLiters:       decimal.Zero,
		DeliveryCount:     deliveries,
		QualityCheckCount: qualityChecks,
	}
	for _, sale := range sales {
		kpi.TotalRevenue = kpi.TotalRevenue.Add(sale.TotalHarga)
		kpi.TotalLiters = kpi.TotalLiters.Add(sale.JumlahLiter)
	}
	return kpi
}

// SalesByFuelType sums liters per fuel type in display order. Sales whose
// nozzle carries no tank are grouped under an empty fuel type, sorted last.
func SalesByFuelType(sales []fuelsale.FuelSale) []dashboard.FuelTypeVolume {
	totals := make(map[fuel.FuelType]decimal.Decimal)
	for _, sale := range sales {
		ft := sale.FuelType()
		totals[ft] = totals[ft].Add(sale.JumlahLiter)
	}

	out := make([]dashboard.FuelTypeVolume, 0, len(totals))
	for ft, liters := range totals {
		name := ft.Label()
		if ft == "" {
			name = "Lainnya"
		}
		out = append(out, dashboard.FuelTypeVolume{FuelType: ft, Name: name, Liters: liters})
	}
	sort.Slice(out, func(i, j int) bool {
		oi, oj := out[i].FuelType.Order(), out[j].FuelType.Order()
		if oi != oj {
			return oi < oj
		}
		return out[i].FuelType < out[j].FuelType
	})
	return out
}

// StockComposition takes the most recent delivery and keeps every volume
// field with a positive value, in field order.
func StockComposition(deliveries []delivery.StockDelivery) []dashboard.StockSlice {
	out := []dashboard.StockSlice{}
	if len(deliveries) == 0 {
		return out
	}

	latest := deliveries[0]
	for _, d := range deliveries[1:] {
		if d.CreatedAt.After(latest.CreatedAt.Time) {
			latest = d
		}
	}

	for _, v := range latest.Volumes {
		if v.Value.IsPositive() {
			out = append(out, dashboard.StockSlice{Name: v.Name(), Value: v.Value})
		}
	}
	return out
}

// TankLevels reports the fill level of every tank.
func TankLevels(tanks []fuel.Tank) []dashboard.TankLevel {
	out := make([]dashboard.TankLevel, 0, len(tanks))
	for _, t := range tanks {
		out = append(out, dashboard.TankLevel{
			CodeTank:      t.CodeTank,
			FuelType:      t.FuelType,
			Capacity:      t.Capacity,
			CurrentVolume: t.CurrentVolume,
			FillPercent:   t.FillRatio() * 100,
		})
	}
	return out
}

func (s *DashboardServiceImpl) ListStations(ctx context.Context) ([]dashboard.StationSummary, error) {
	stations, err := s.stations.ListStations(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dashboard.StationSummary, 0, len(stations))
	for _, st := range stations {
		out = append(out, dashboard.StationSummary{
			ID:            st.ID.String(),
			CodeSpbu:      st.CodeSpbu,
			Address:       st.Address,
			EmployeeCount: len(st.Users),
			TankCount:     len(st.Tanks),
		})
	}
	return out, nil
}

func (s *DashboardServiceImpl) GetStationDetail(ctx context.Context, id string) (*dashboard.StationDetail, error) {
	if id == "" {
		return nil, dashboard.ErrStationIDRequired
	}
	return s.DashboardRepository.GetStationDetail(ctx, id)
}

// GetFinancialReport keeps the station's sales inside the harian, bulanan or
// tahunan window around now and totals their revenue.
func (s *DashboardServiceImpl) GetFinancialReport(ctx context.Context, req dashboard.FinancialReportRequest) (*dashboard.FinancialReportResponse, error) {
	if req.StationID == "" {
		return nil, dashboard.ErrStationIDRequired
	}
	if req.Granularity == "" {
		req.Granularity = period.Daily
	}
	w, err := period.Relative(req.Granularity, s.now().In(s.loc))
	if err != nil {
		return nil, dashboard.ErrInvalidGranularity
	}

	detail, err := s.DashboardRepository.GetStationDetail(ctx, req.StationID)
	if err != nil {
		return nil, err
	}

	sales := period.Filter(detail.FuelSales, w, s.loc, func(x fuelsale.FuelSale) time.Time { return x.Tanggal.Time })
	kpi := Summarize(sales, 0, 0)

	return &dashboard.FinancialReportResponse{
		StationID:        detail.ID.String(),
		CodeSpbu:         detail.CodeSpbu,
		Period:           req.Granularity,
		TotalRevenue:     kpi.TotalRevenue,
		TransactionCount: len(sales),
		Sales:            sales,
	}, nil
}
