package delivery

import "context"

type DeliveryRepository interface {
	ListStockDeliveries(ctx context.Context) ([]StockDelivery, error)
	ListTankDeliveries(ctx context.Context) ([]TankDelivery, error)
	ListFuelQualities(ctx context.Context) ([]FuelQuality, error)
}
