package upstream

import (
	"context"
	"fmt"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/issue"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/apiclient"
)

type issueRepositoryImpl struct {
	client *apiclient.Client
}

func NewIssueRepository(client *apiclient.Client) issue.IssueRepository {
	return &issueRepositoryImpl{client: client}
}

func (r *issueRepositoryImpl) ListReports(ctx context.Context) ([]issue.Report, error) {
	var out []issue.Report
	if err := r.client.Get(ctx, "/operator/issue-report", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list issue reports: %w", err)
	}
	return out, nil
}

func (r *issueRepositoryImpl) ListDamages(ctx context.Context) ([]issue.Damage, error) {
	var out []issue.Damage
	if err := r.client.Get(ctx, "/supervisor/equipment-damage-report", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list equipment damage reports: %w", err)
	}
	return out, nil
}
