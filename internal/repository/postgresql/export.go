package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/report"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/database"
)

const exportSchema = `
	CREATE TABLE IF NOT EXISTS report_exports (
		id           UUID PRIMARY KEY,
		kind         TEXT        NOT NULL,
		filename     TEXT        NOT NULL,
		content_type TEXT        NOT NULL,
		station_code TEXT        NOT NULL DEFAULT '',
		period       TEXT        NOT NULL DEFAULT '',
		row_count    INTEGER     NOT NULL DEFAULT 0,
		size         BIGINT      NOT NULL,
		checksum     TEXT        NOT NULL,
		storage_path TEXT        NOT NULL,
		created_by   TEXT        NOT NULL DEFAULT '',
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS report_exports_created_at_idx ON report_exports (created_at DESC);
`

const exportColumns = `id, kind, filename, content_type, station_code, period, row_count, size, checksum, storage_path, created_by, created_at`

type exportRepositoryImpl struct {
	db *database.DB
}

func NewExportRepository(db *database.DB) report.ExportRepository {
	return &exportRepositoryImpl{db: db}
}

// EnsureExportSchema creates the report_exports table when it is missing.
func EnsureExportSchema(ctx context.Context, db *database.DB) error {
	if _, err := db.Exec(ctx, exportSchema); err != nil {
		return fmt.Errorf("failed to create report_exports: %w", err)
	}
	return nil
}

func (r *exportRepositoryImpl) Create(ctx context.Context, rec report.ExportRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `INSERT INTO report_exports (` + exportColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := q.Exec(ctx, query,
		rec.ID,
		string(rec.Kind),
		rec.Filename,
		rec.ContentType,
		rec.StationCode,
		rec.Period,
		rec.RowCount,
		rec.Size,
		rec.Checksum,
		rec.StoragePath,
		rec.CreatedBy,
		rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create export record: %w", err)
	}
	return nil
}

func (r *exportRepositoryImpl) GetByID(ctx context.Context, id string) (report.ExportRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + exportColumns + ` FROM report_exports WHERE id = $1`
	rec, err := scanExport(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return report.ExportRecord{}, report.ErrExportNotFound
		}
		return report.ExportRecord{}, fmt.Errorf("failed to get export record: %w", err)
	}
	return rec, nil
}

func (r *exportRepositoryImpl) List(ctx context.Context, limit, offset int) ([]report.ExportRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM report_exports`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count export records: %w", err)
	}

	query := `SELECT ` + exportColumns + ` FROM report_exports
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query export records: %w", err)
	}
	defer rows.Close()

	records := []report.ExportRecord{}
	for rows.Next() {
		rec, err := scanExport(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan export record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read export records: %w", err)
	}
	return records, total, nil
}

func scanExport(row pgx.Row) (report.ExportRecord, error) {
	var (
		rec  report.ExportRecord
		kind string
	)
	err := row.Scan(
		&rec.ID,
		&kind,
		&rec.Filename,
		&rec.ContentType,
		&rec.StationCode,
		&rec.Period,
		&rec.RowCount,
		&rec.Size,
		&rec.Checksum,
		&rec.StoragePath,
		&rec.CreatedBy,
		&rec.CreatedAt,
	)
	rec.Kind = report.Kind(kind)
	return rec, err
}
