package fuelsale

import "context"

type FuelSaleRepository interface {
	List(ctx context.Context) ([]FuelSale, error)
	Create(ctx context.Context, payload Payload) error
	Update(ctx context.Context, id string, payload Payload) error
	Delete(ctx context.Context, id string) error
}
