package checklist

import (
	"context"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/period"
)

type ChecklistService interface {
	List(ctx context.Context, kind string, w period.Window) ([]Entry, error)
	Create(ctx context.Context, kind string, req SubmitRequest) ([]Entry, error)
	Update(ctx context.Context, kind string, id string, req SubmitRequest) ([]Entry, error)
	Delete(ctx context.Context, kind string, id string, confirmed bool) ([]Entry, error)
}
