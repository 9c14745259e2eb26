package dashboard

import "context"

// DashboardRepository reads the nested station views of the admin monitoring page
type DashboardRepository interface {
	GetStationDetail(ctx context.Context, id string) (*StationDetail, error)
}
