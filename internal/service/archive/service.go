package archive

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/report"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/session"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/period"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/storage"
	"golang.org/x/crypto/blake2b"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Transactor runs fn in a transaction; repository calls made with the ctx
// passed to fn commit or roll back together.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ArchiveServiceImpl struct {
	report.ExportRepository
	files storage.FileStorage
	tx    Transactor
	now   func() time.Time
}

func NewArchiveService(exportRepository report.ExportRepository, files storage.FileStorage, tx Transactor) report.ArchiveService {
	return &ArchiveServiceImpl{
		ExportRepository: exportRepository,
		files:            files,
		tx:               tx,
		now:              time.Now,
	}
}

// Save implements report.ArchiveService.
func (a *ArchiveServiceImpl) Save(ctx context.Context, kind report.Kind, req report.ExportRequest, file *report.File) (*report.ExportRecord, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate export id: %w", err)
	}
	sum := blake2b.Sum256(file.Data)
	createdAt := a.now().UTC()

	rec := report.ExportRecord{
		ID:          id.String(),
		Kind:        kind,
		Filename:    file.Filename,
		ContentType: file.ContentType,
		StationCode: req.StationCode,
		Period:      periodKey(req.Window),
		RowCount:    file.RowCount,
		Size:        int64(len(file.Data)),
		Checksum:    hex.EncodeToString(sum[:]),
		CreatedAt:   createdAt,
	}
	if s, ok := session.FromContext(ctx); ok {
		rec.CreatedBy = s.UserID
		if rec.StationCode == "" {
			rec.StationCode = s.StationCode
		}
	}

	rec.StoragePath = createdAt.Format("2006/01/") + rec.ID + "_" + file.Filename

	// The row commits only once the file is stored.
	stored := false
	err = a.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := a.ExportRepository.Create(ctx, rec); err != nil {
			return err
		}
		if _, err := a.files.Upload(ctx, bytes.NewReader(file.Data), rec.StoragePath); err != nil {
			return fmt.Errorf("failed to store export: %w", err)
		}
		stored = true
		return nil
	})
	if err != nil {
		if stored {
			if delErr := a.files.Delete(ctx, rec.StoragePath); delErr != nil {
				slog.Warn("orphaned export file", "path", rec.StoragePath, "error", delErr)
			}
		}
		return nil, err
	}

	slog.Info("export archived", "id", rec.ID, "kind", kind, "filename", rec.Filename, "size", rec.Size)
	return &rec, nil
}

// List implements report.ArchiveService.
func (a *ArchiveServiceImpl) List(ctx context.Context, limit, offset int) ([]report.ExportRecord, int64, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return a.ExportRepository.List(ctx, limit, offset)
}

// Open implements report.ArchiveService. The stored bytes are checked
// against the recorded checksum.
func (a *ArchiveServiceImpl) Open(ctx context.Context, id string) (*report.ExportRecord, []byte, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil, report.ErrExportNotFound
	}
	rec, err := a.ExportRepository.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	rc, err := a.files.Download(ctx, rec.StoragePath)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, report.ErrExportNotFound
		}
		return nil, nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read export: %w", err)
	}
	sum := blake2b.Sum256(data)
	if hex.EncodeToString(sum[:]) != rec.Checksum {
		return nil, nil, fmt.Errorf("export %s: checksum mismatch", id)
	}
	return &rec, data, nil
}

func periodKey(w period.Window) string {
	switch {
	case w.Year != 0 && w.Month != 0:
		return fmt.Sprintf("%04d-%02d", w.Year, int(w.Month))
	case w.Year != 0:
		return fmt.Sprintf("%04d", w.Year)
	}
	return ""
}

// Disabled is the archive used when no database is configured.
type Disabled struct{}

func (Disabled) Save(ctx context.Context, kind report.Kind, req report.ExportRequest, file *report.File) (*report.ExportRecord, error) {
	return nil, nil
}

func (Disabled) List(ctx context.Context, limit, offset int) ([]report.ExportRecord, int64, error) {
	return []report.ExportRecord{}, 0, nil
}

func (Disabled) Open(ctx context.Context, id string) (*report.ExportRecord, []byte, error) {
	return nil, nil, report.ErrExportNotFound
}
