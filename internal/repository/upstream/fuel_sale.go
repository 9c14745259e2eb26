package upstream

import (
	"context"
	"fmt"
	"net/url"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/fuelsale"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/apiclient"
)

const fuelSalesPath = "/supervisor/fuel-sales"

type fuelSaleRepositoryImpl struct {
	client *apiclient.Client
}

func NewFuelSaleRepository(client *apiclient.Client) fuelsale.FuelSaleRepository {
	return &fuelSaleRepositoryImpl{client: client}
}

func (r *fuelSaleRepositoryImpl) List(ctx context.Context) ([]fuelsale.FuelSale, error) {
	var sales []fuelsale.FuelSale
	if err := r.client.Get(ctx, fuelSalesPath, nil, &sales); err != nil {
		return nil, fmt.Errorf("failed to list fuel sales: %w", err)
	}
	return sales, nil
}

func (r *fuelSaleRepositoryImpl) Create(ctx context.Context, payload fuelsale.Payload) error {
	if err := r.client.Post(ctx, fuelSalesPath, payload, apiclient.Form, nil); err != nil {
		return fmt.Errorf("failed to create fuel sale: %w", err)
	}
	return nil
}

func (r *fuelSaleRepositoryImpl) Update(ctx context.Context, id string, payload fuelsale.Payload) error {
	if err := r.client.Put(ctx, fuelSalesPath+"/"+url.PathEscape(id), payload, apiclient.Form, nil); err != nil {
		return fmt.Errorf("failed to update fuel sale: %w", err)
	}
	return nil
}

func (r *fuelSaleRepositoryImpl) Delete(ctx context.Context, id string) error {
	if err := r.client.Delete(ctx, fuelSalesPath+"/"+url.PathEscape(id), nil); err != nil {
		return fmt.Errorf("failed to delete fuel sale: %w", err)
	}
	return nil
}
