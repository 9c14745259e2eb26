package upstream

import (
	"context"
	"fmt"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/delivery"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/apiclient"
)

type deliveryRepositoryImpl struct {
	client *apiclient.Client
}

func NewDeliveryRepository(client *apiclient.Client) delivery.DeliveryRepository {
	return &deliveryRepositoryImpl{client: client}
}

func (r *deliveryRepositoryImpl) ListStockDeliveries(ctx context.Context) ([]delivery.StockDelivery, error) {
	var out []delivery.StockDelivery
	if err := r.client.Get(ctx, "/supervisor/stock-deliveries", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list stock deliveries: %w", err)
	}
	return out, nil
}

func (r *deliveryRepositoryImpl) ListTankDeliveries(ctx context.Context) ([]delivery.TankDelivery, error) {
	var out []delivery.TankDelivery
	if err := r.client.Get(ctx, "/supervisor/tank-deliveries", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list tank deliveries: %w", err)
	}
	return out, nil
}

func (r *deliveryRepositoryImpl) ListFuelQualities(ctx context.Context) ([]delivery.FuelQuality, error) {
	var out []delivery.FuelQuality
	if err := r.client.Get(ctx, "/supervisor/fuel-qualities", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list fuel qualities: %w", err)
	}
	return out, nil
}
