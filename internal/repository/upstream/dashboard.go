package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/dashboard"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/fuel"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/apiclient"
)

type dashboardRepositoryImpl struct {
	client *apiclient.Client
}

func NewDashboardRepository(client *apiclient.Client) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{client: client}
}

func (r *dashboardRepositoryImpl) GetStationDetail(ctx context.Context, id string) (*dashboard.StationDetail, error) {
	var detail dashboard.StationDetail
	if err := r.client.Get(ctx, "/admin/spbus/"+url.PathEscape(id), nil, &detail); err != nil {
		if apiclient.IsStatus(err, http.StatusNotFound) {
			return nil, fuel.ErrStationNotFound
		}
		return nil, fmt.Errorf("failed to get station %s: %w", id, err)
	}
	return &detail, nil
}
