package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/dashboard"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/delivery"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/fuel"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/fuelsale"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/user"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/period"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSales struct {
	sales []fuelsale.FuelSale
	err   error
}

func (f *fakeSales) List(ctx context.Context) ([]fuelsale.FuelSale, error) { return f.sales, f.err }
func (f *fakeSales) Create(ctx context.Context, p fuelsale.Payload) error  { return nil }
func (f *fakeSales) Update(ctx context.Context, id string, p fuelsale.Payload) error {
	return nil
}
func (f *fakeSales) Delete(ctx context.Context, id string) error { return nil }

type fakeDeliveries struct {
	stock     []delivery.StockDelivery
	drops     []delivery.TankDelivery
	qualities []delivery.FuelQuality
}

func (f *fakeDeliveries) ListStockDeliveries(ctx context.Context) ([]delivery.StockDelivery, error) {
	return f.stock, nil
}
func (f *fakeDeliveries) ListTankDeliveries(ctx context.Context) ([]delivery.TankDelivery, error) {
	return f.drops, nil
}
func (f *fakeDeliveries) ListFuelQualities(ctx context.Context) ([]delivery.FuelQuality, error) {
	return f.qualities, nil
}

type fakeEquipment struct{ tanks []fuel.Tank }

func (f *fakeEquipment) ListTanks(ctx context.Context) ([]fuel.Tank, error) { return f.tanks, nil }
func (f *fakeEquipment) ListPumpUnits(ctx context.Context) ([]fuel.PumpUnit, error) {
	return nil, nil
}

type fakeStations struct{ stations []fuel.Station }

func (f *fakeStations) ListStations(ctx context.Context) ([]fuel.Station, error) {
	return f.stations, nil
}

type fakeDetail struct{ detail *dashboard.StationDetail }

func (f *fakeDetail) GetStationDetail(ctx context.Context, id string) (*dashboard.StationDetail, error) {
	if f.detail == nil {
		return nil, fuel.ErrStationNotFound
	}
	return f.detail, nil
}

func at(s string) utils.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return utils.Time{Time: t}
}

func sale(ft fuel.FuelType, date string, liters, total int64) fuelsale.FuelSale {
	return fuelsale.FuelSale{
		Nozzle:      &fuel.Nozzle{KodeNozzle: "N", Tank: &fuel.Tank{FuelType: ft}},
		Tanggal:     at(date),
		JumlahLiter: decimal.NewFromInt(liters),
		TotalHarga:  decimal.NewFromInt(total),
	}
}

func TestStockComposition_LatestPositiveVolumes(t *testing.T) {
	var older, latest delivery.StockDelivery
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"createdAt":"2024-05-01T00:00:00Z","volumePertamax":900}`), &older))
	require.NoError(t, json.Unmarshal([]byte(`{"id":2,"createdAt":"2024-05-03T00:00:00Z","volumePertalite":100,"volumePertamax":0,"volumeBiosolar":"50"}`), &latest))

	got := StockComposition([]delivery.StockDelivery{older, latest})

	require.Len(t, got, 2)
	assert.Equal(t, "Pertalite", got[0].Name)
	assert.Equal(t, "100", got[0].Value.String())
	assert.Equal(t, "Biosolar", got[1].Name)
	assert.Equal(t, "50", got[1].Value.String())
}

func TestStockComposition_Empty(t *testing.T) {
	got := StockComposition(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSalesByFuelType_OrderAndUnknown(t *testing.T) {
	sales := []fuelsale.FuelSale{
		sale(fuel.Biosolar, "2024-05-01T01:00:00Z", 10, 0),
		sale(fuel.Pertalite, "2024-05-01T01:00:00Z", 5, 0),
		sale(fuel.Pertalite, "2024-05-02T01:00:00Z", 7, 0),
		{JumlahLiter: decimal.NewFromInt(3)},
	}

	got := SalesByFuelType(sales)

	require.Len(t, got, 3)
	assert.Equal(t, fuel.Pertalite, got[0].FuelType)
	assert.Equal(t, "12", got[0].Liters.String())
	assert.Equal(t, fuel.Biosolar, got[1].FuelType)
	assert.Equal(t, "Lainnya", got[2].Name)
}

func TestSummarize_EmptyIsZero(t *testing.T) {
	kpi := Summarize(nil, 0, 0)
	assert.True(t, kpi.TotalRevenue.IsZero())
	assert.True(t, kpi.TotalLiters.IsZero())
}

func TestGetSupervisorDashboard_FiltersByWindow(t *testing.T) {
	sales := &fakeSales{sales: []fuelsale.FuelSale{
		sale(fuel.Pertalite, "2024-05-10T03:00:00Z", 100, 1000000),
		sale(fuel.Pertamax, "2024-05-11T03:00:00Z", 50, 650000),
		sale(fuel.Pertalite, "2024-04-30T03:00:00Z", 999, 9990000),
	}}
	deliveries := &fakeDeliveries{
		drops: []delivery.TankDelivery{
			{DeliveryDate: at("2024-05-02T00:00:00Z")},
			{DeliveryDate: at("2023-05-02T00:00:00Z")},
		},
		qualities: []delivery.FuelQuality{{Tanggal: at("2024-05-02T00:00:00Z")}},
	}
	equipment := &fakeEquipment{tanks: []fuel.Tank{
		{CodeTank: "T-01", FuelType: fuel.Pertalite, Capacity: decimal.NewFromInt(200), CurrentVolume: decimal.NewFromInt(50)},
	}}

	svc := NewDashboardService(&fakeDetail{}, sales, deliveries, equipment, &fakeStations{}, time.UTC)
	resp, err := svc.GetSupervisorDashboard(context.Background(), dashboard.SupervisorDashboardRequest{
		Window: period.Window{Year: 2024, Month: 5},
	})

	require.NoError(t, err)
	assert.Equal(t, "1650000", resp.KPI.TotalRevenue.String())
	assert.Equal(t, "150", resp.KPI.TotalLiters.String())
	assert.Equal(t, 1, resp.KPI.DeliveryCount)
	assert.Equal(t, 1, resp.KPI.QualityCheckCount)
	require.Len(t, resp.SalesByFuelType, 2)
	assert.Empty(t, resp.StockComposition)
	require.Len(t, resp.Tanks, 1)
	assert.InDelta(t, 25.0, resp.Tanks[0].FillPercent, 1e-9)
}

func TestGetSupervisorDashboard_WindowsSalesBySaleDate(t *testing.T) {
	recordedLate := sale(fuel.Pertalite, "2024-05-31T10:00:00Z", 40, 400000)
	recordedLate.CreatedAt = at("2024-06-01T02:00:00Z")
	backdated := sale(fuel.Pertalite, "2024-04-30T10:00:00Z", 70, 700000)
	backdated.CreatedAt = at("2024-05-01T02:00:00Z")

	svc := NewDashboardService(&fakeDetail{}, &fakeSales{sales: []fuelsale.FuelSale{recordedLate, backdated}},
		&fakeDeliveries{}, &fakeEquipment{}, &fakeStations{}, time.UTC)
	resp, err := svc.GetSupervisorDashboard(context.Background(), dashboard.SupervisorDashboardRequest{
		Window: period.Window{Year: 2024, Month: 5},
	})

	require.NoError(t, err)
	assert.Equal(t, "40", resp.KPI.TotalLiters.String())
	assert.Equal(t, "400000", resp.KPI.TotalRevenue.String())
}

func TestGetSupervisorDashboard_PropagatesUpstreamError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewDashboardService(&fakeDetail{}, &fakeSales{err: boom}, &fakeDeliveries{}, &fakeEquipment{}, &fakeStations{}, time.UTC)

	_, err := svc.GetSupervisorDashboard(context.Background(), dashboard.SupervisorDashboardRequest{})
	assert.ErrorIs(t, err, boom)
}

func TestListStations_Counts(t *testing.T) {
	stations := &fakeStations{stations: []fuel.Station{{
		ID:       "1",
		CodeSpbu: "34.17115",
		Users:    []user.User{{Name: "a"}, {Name: "b"}},
		Tanks:    []fuel.Tank{{CodeTank: "T-01"}},
	}}}
	svc := NewDashboardService(&fakeDetail{}, &fakeSales{}, &fakeDeliveries{}, &fakeEquipment{}, stations, time.UTC)

	got, err := svc.ListStations(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].EmployeeCount)
	assert.Equal(t, 1, got[0].TankCount)
}

func TestGetFinancialReport(t *testing.T) {
	detail := &dashboard.StationDetail{
		Station: fuel.Station{ID: "7", CodeSpbu: "34.17115"},
		FuelSales: []fuelsale.FuelSale{
			sale(fuel.Pertalite, "2024-05-17T02:00:00Z", 10, 100000),
			sale(fuel.Pertalite, "2024-05-16T02:00:00Z", 10, 200000),
			sale(fuel.Pertalite, "2024-01-16T02:00:00Z", 10, 400000),
		},
	}
	svc := NewDashboardService(&fakeDetail{detail: detail}, &fakeSales{}, &fakeDeliveries{}, &fakeEquipment{}, &fakeStations{}, time.UTC).(*DashboardServiceImpl)
	svc.now = func() time.Time { return time.Date(2024, 5, 17, 12, 0, 0, 0, time.UTC) }

	cases := []struct {
		g     period.Granularity
		total string
		count int
	}{
		{period.Daily, "100000", 1},
		{period.Monthly, "300000", 2},
		{period.Yearly, "700000", 3},
	}
	for _, c := range cases {
		t.Run(string(c.g), func(t *testing.T) {
			resp, err := svc.GetFinancialReport(context.Background(), dashboard.FinancialReportRequest{StationID: "7", Granularity: c.g})
			require.NoError(t, err)
			assert.Equal(t, c.total, resp.TotalRevenue.String())
			assert.Equal(t, c.count, resp.TransactionCount)
			assert.Equal(t, "34.17115", resp.CodeSpbu)
		})
	}

	_, err := svc.GetFinancialReport(context.Background(), dashboard.FinancialReportRequest{StationID: "7", Granularity: "mingguan"})
	assert.ErrorIs(t, err, dashboard.ErrInvalidGranularity)

	_, err = svc.GetFinancialReport(context.Background(), dashboard.FinancialReportRequest{})
	assert.ErrorIs(t, err, dashboard.ErrStationIDRequired)
}
