package resource

import (
	"context"
	"net/url"
)

type ResourceRepository interface {
	List(ctx context.Context, def Definition, query url.Values) ([]Record, error)
	Create(ctx context.Context, def Definition, body Record) error
	Update(ctx context.Context, def Definition, id string, body Record) error
	Delete(ctx context.Context, def Definition, id string) error
}
