package upstream

import (
	"context"
	"fmt"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/fuel"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/apiclient"
)

type stationRepositoryImpl struct {
	client *apiclient.Client
}

func NewStationRepository(client *apiclient.Client) fuel.StationRepository {
	return &stationRepositoryImpl{client: client}
}

func (r *stationRepositoryImpl) ListStations(ctx context.Context) ([]fuel.Station, error) {
	var out []fuel.Station
	if err := r.client.Get(ctx, "/admin/spbus", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list stations: %w", err)
	}
	return out, nil
}

type equipmentRepositoryImpl struct {
	client *apiclient.Client
}

func NewEquipmentRepository(client *apiclient.Client) fuel.EquipmentRepository {
	return &equipmentRepositoryImpl{client: client}
}

func (r *equipmentRepositoryImpl) ListTanks(ctx context.Context) ([]fuel.Tank, error) {
	var out []fuel.Tank
	if err := r.client.Get(ctx, "/supervisor/tanks", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list tanks: %w", err)
	}
	return out, nil
}

func (r *equipmentRepositoryImpl) ListPumpUnits(ctx context.Context) ([]fuel.PumpUnit, error) {
	var out []fuel.PumpUnit
	if err := r.client.Get(ctx, "/supervisor/pump-units", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list pump units: %w", err)
	}
	return out, nil
}
