package checklist

import (
	"context"
	"encoding/json"
)

type ChecklistRepository interface {
	List(ctx context.Context, v Variant) ([]map[string]json.RawMessage, error)
	Create(ctx context.Context, v Variant, form map[string]interface{}) error
	Update(ctx context.Context, v Variant, id string, form map[string]interface{}) error
	Delete(ctx context.Context, v Variant, id string) error
}
