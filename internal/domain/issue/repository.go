package issue

import "context"

type IssueRepository interface {
	ListReports(ctx context.Context) ([]Report, error)
	ListDamages(ctx context.Context) ([]Damage, error)
}
