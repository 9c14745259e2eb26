package fuelsale

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/fuelsale"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/resource"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/period"
)

type FuelSaleServiceImpl struct {
	fuelsale.FuelSaleRepository
	loc *time.Location
}

func NewFuelSaleService(fuelSaleRepository fuelsale.FuelSaleRepository, loc *time.Location) fuelsale.FuelSaleService {
	if loc == nil {
		loc = time.UTC
	}
	return &FuelSaleServiceImpl{FuelSaleRepository: fuelSaleRepository, loc: loc}
}

// List implements fuelsale.FuelSaleService.
func (s *FuelSaleServiceImpl) List(ctx context.Context, req fuelsale.ListFuelSaleRequest) (*fuelsale.FuelSaleListResponse, error) {
	if err := req.Window.Validate(); err != nil {
		return nil, err
	}
	sales, err := s.FuelSaleRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	sales = period.Filter(sales, req.Window, s.loc, func(x fuelsale.FuelSale) time.Time { return x.Tanggal.Time })

	res := &fuelsale.FuelSaleListResponse{
		Sales:       sales,
		TotalLiter:  decimal.Zero,
		TotalHarga:  decimal.Zero,
		RecordCount: len(sales),
	}
	for _, sale := range sales {
		res.TotalLiter = res.TotalLiter.Add(sale.JumlahLiter)
		res.TotalHarga = res.TotalHarga.Add(sale.TotalHarga)
	}
	return res, nil
}

// Create implements fuelsale.FuelSaleService.
func (s *FuelSaleServiceImpl) Create(ctx context.Context, req fuelsale.UpsertFuelSaleRequest) (*fuelsale.FuelSaleListResponse, error) {
	payload, err := prepare(req)
	if err != nil {
		return nil, err
	}
	if err := s.FuelSaleRepository.Create(ctx, payload); err != nil {
		return nil, err
	}
	slog.Info("fuel sale created", "nozzle_id", payload.NozzleID, "jumlah_liter", payload.JumlahLiter)
	return s.List(ctx, fuelsale.ListFuelSaleRequest{})
}

// Update implements fuelsale.FuelSaleService.
func (s *FuelSaleServiceImpl) Update(ctx context.Context, id string, req fuelsale.UpsertFuelSaleRequest) (*fuelsale.FuelSaleListResponse, error) {
	if id == "" {
		return nil, resource.ErrIDRequired
	}
	payload, err := prepare(req)
	if err != nil {
		return nil, err
	}
	if err := s.FuelSaleRepository.Update(ctx, id, payload); err != nil {
		return nil, err
	}
	slog.Info("fuel sale updated", "id", id)
	return s.List(ctx, fuelsale.ListFuelSaleRequest{})
}

// Delete implements fuelsale.FuelSaleService.
func (s *FuelSaleServiceImpl) Delete(ctx context.Context, id string, confirmed bool) (*fuelsale.FuelSaleListResponse, error) {
	if id == "" {
		return nil, resource.ErrIDRequired
	}
	if !confirmed {
		return nil, resource.ErrConfirmationRequired
	}
	if err := s.FuelSaleRepository.Delete(ctx, id); err != nil {
		return nil, err
	}
	slog.Info("fuel sale deleted", "id", id)
	return s.List(ctx, fuelsale.ListFuelSaleRequest{})
}

// prepare rejects the request before any upstream call when the readings
// are inconsistent.
func prepare(req fuelsale.UpsertFuelSaleRequest) (fuelsale.Payload, error) {
	if err := req.Validate(); err != nil {
		return fuelsale.Payload{}, err
	}
	payload, err := req.ToPayload()
	if err != nil {
		return fuelsale.Payload{}, fmt.Errorf("invalid fuel sale: %w", err)
	}
	return payload, nil
}
