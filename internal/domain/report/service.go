package report

import (
	"context"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/checklist"
)

// ReportService builds and renders downloadable reports.
type ReportService interface {
	// Tabular ledgers: fuel sales, issue reports, pump units, stock
	// deliveries, damage reports and the station summary.
	ExportTabular(ctx context.Context, req ExportRequest) (*File, error)

	// Monthly calendar grid of one checklist variant.
	ExportChecklist(ctx context.Context, req checklist.ExportRequest, format Format) (*File, error)

	// Rekap reports with embedded photos.
	ExportAttendances(ctx context.Context, req ExportRequest) (*File, error)
	ExportAbsences(ctx context.Context, req ExportRequest) (*File, error)
}

// ArchiveService keeps a copy of every generated file.
type ArchiveService interface {
	Save(ctx context.Context, kind Kind, req ExportRequest, file *File) (*ExportRecord, error)
	List(ctx context.Context, limit, offset int) ([]ExportRecord, int64, error)
	Open(ctx context.Context, id string) (*ExportRecord, []byte, error)
}
