package fuelsale

import "context"

type FuelSaleService interface {
	List(ctx context.Context, req ListFuelSaleRequest) (*FuelSaleListResponse, error)
	Create(ctx context.Context, req UpsertFuelSaleRequest) (*FuelSaleListResponse, error)
	Update(ctx context.Context, id string, req UpsertFuelSaleRequest) (*FuelSaleListResponse, error)
	Delete(ctx context.Context, id string, confirmed bool) (*FuelSaleListResponse, error)
}
