package report

import (
	"context"
	"time"
)

// ExportRecord is the archived metadata of one generated file.
type ExportRecord struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	StationCode string    `json:"station_code,omitempty"`
	Period      string    `json:"period,omitempty"`
	RowCount    int       `json:"row_count"`
	Size        int64     `json:"size"`
	Checksum    string    `json:"checksum"`
	StoragePath string    `json:"-"`
	CreatedBy   string    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ExportRepository stores archive metadata.
type ExportRepository interface {
	Create(ctx context.Context, rec ExportRecord) error
	GetByID(ctx context.Context, id string) (ExportRecord, error)
	List(ctx context.Context, limit, offset int) ([]ExportRecord, int64, error)
}
