package resource

import (
	"context"
	"net/url"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/user"
)

// ResourceService runs the generic views. Every mutation answers with the
// freshly re-fetched collection.
type ResourceService interface {
	List(ctx context.Context, section user.Section, name string, query url.Values) ([]Record, error)
	Create(ctx context.Context, section user.Section, name string, fields Record) ([]Record, error)
	Update(ctx context.Context, section user.Section, name string, id string, fields Record) ([]Record, error)
	Delete(ctx context.Context, section user.Section, name string, id string, confirmed bool) ([]Record, error)
}
