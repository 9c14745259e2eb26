package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/checklist"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/apiclient"
)

type checklistRepositoryImpl struct {
	client *apiclient.Client
}

func NewChecklistRepository(client *apiclient.Client) checklist.ChecklistRepository {
	return &checklistRepositoryImpl{client: client}
}

func (r *checklistRepositoryImpl) List(ctx context.Context, v checklist.Variant) ([]map[string]json.RawMessage, error) {
	var records []map[string]json.RawMessage
	if err := r.client.Get(ctx, v.Path, nil, &records); err != nil {
		return nil, fmt.Errorf("failed to list %s checklist: %w", v.Kind, err)
	}
	return records, nil
}

func (r *checklistRepositoryImpl) Create(ctx context.Context, v checklist.Variant, form map[string]interface{}) error {
	if err := r.client.Post(ctx, v.Path, form, apiclient.Form, nil); err != nil {
		return fmt.Errorf("failed to create %s checklist: %w", v.Kind, err)
	}
	return nil
}

func (r *checklistRepositoryImpl) Update(ctx context.Context, v checklist.Variant, id string, form map[string]interface{}) error {
	if err := r.client.Put(ctx, v.Path+"/"+url.PathEscape(id), form, apiclient.Form, nil); err != nil {
		return fmt.Errorf("failed to update %s checklist: %w", v.Kind, err)
	}
	return nil
}

func (r *checklistRepositoryImpl) Delete(ctx context.Context, v checklist.Variant, id string) error {
	if err := r.client.Delete(ctx, v.Path+"/"+url.PathEscape(id), nil); err != nil {
		return fmt.Errorf("failed to delete %s checklist: %w", v.Kind, err)
	}
	return nil
}
