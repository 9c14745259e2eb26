package upstream

import (
	"context"
	"fmt"
	"net/url"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/resource"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/apiclient"
)

type resourceRepositoryImpl struct {
	client *apiclient.Client
}

func NewResourceRepository(client *apiclient.Client) resource.ResourceRepository {
	return &resourceRepositoryImpl{client: client}
}

func encoding(def resource.Definition) apiclient.Encoding {
	if def.Encoding == resource.Form {
		return apiclient.Form
	}
	return apiclient.JSON
}

func (r *resourceRepositoryImpl) List(ctx context.Context, def resource.Definition, query url.Values) ([]resource.Record, error) {
	var records []resource.Record
	if err := r.client.Get(ctx, def.Path, query, &records); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", def.Name, err)
	}
	return records, nil
}

func (r *resourceRepositoryImpl) Create(ctx context.Context, def resource.Definition, body resource.Record) error {
	if err := r.client.Post(ctx, def.Path, map[string]interface{}(body), encoding(def), nil); err != nil {
		return fmt.Errorf("failed to create %s: %w", def.Name, err)
	}
	return nil
}

func (r *resourceRepositoryImpl) Update(ctx context.Context, def resource.Definition, id string, body resource.Record) error {
	if err := r.client.Put(ctx, def.Path+"/"+url.PathEscape(id), map[string]interface{}(body), encoding(def), nil); err != nil {
		return fmt.Errorf("failed to update %s: %w", def.Name, err)
	}
	return nil
}

func (r *resourceRepositoryImpl) Delete(ctx context.Context, def resource.Definition, id string) error {
	if err := r.client.Delete(ctx, def.Path+"/"+url.PathEscape(id), nil); err != nil {
		return fmt.Errorf("failed to delete %s: %w", def.Name, err)
	}
	return nil
}
