package archive

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/report"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/session"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/period"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExports struct {
	records   map[string]report.ExportRecord
	createErr error
	limit     int
	offset    int
}

func (f *fakeExports) Create(ctx context.Context, rec report.ExportRecord) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.records == nil {
		f.records = map[string]report.ExportRecord{}
	}
	f.records[rec.ID] = rec
	return nil
}

func (f *fakeExports) GetByID(ctx context.Context, id string) (report.ExportRecord, error) {
	rec, ok := f.records[id]
	if !ok {
		return report.ExportRecord{}, report.ErrExportNotFound
	}
	return rec, nil
}

func (f *fakeExports) List(ctx context.Context, limit, offset int) ([]report.ExportRecord, int64, error) {
	f.limit, f.offset = limit, offset
	return nil, int64(len(f.records)), nil
}

// fakeTx restores the fake table when fn fails, and can fail the commit.
type fakeTx struct {
	exports   *fakeExports
	commitErr error
	calls     int
}

func (f *fakeTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	snapshot := map[string]report.ExportRecord{}
	for k, v := range f.exports.records {
		snapshot[k] = v
	}
	err := fn(ctx)
	if err == nil {
		err = f.commitErr
	}
	if err != nil {
		f.exports.records = snapshot
	}
	return err
}

type failingUpload struct {
	storage.FileStorage
}

func (failingUpload) Upload(ctx context.Context, file io.Reader, key string) (string, error) {
	return "", errors.New("disk full")
}

func newArchive(t *testing.T, exports *fakeExports) (*ArchiveServiceImpl, *storage.LocalStorage) {
	t.Helper()
	return newArchiveIn(t, t.TempDir(), exports)
}

func newArchiveIn(t *testing.T, dir string, exports *fakeExports) (*ArchiveServiceImpl, *storage.LocalStorage) {
	t.Helper()
	files, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)
	svc := NewArchiveService(exports, files, &fakeTx{exports: exports}).(*ArchiveServiceImpl)
	svc.now = func() time.Time { return time.Date(2024, 5, 31, 10, 0, 0, 0, time.UTC) }
	return svc, files
}

var pdf = &report.File{Filename: "Laporan_Fuel_Sales_Mei_2024.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.7 data"), RowCount: 4}

func TestSave_StoresFileAndMetadata(t *testing.T) {
	exports := &fakeExports{}
	svc, files := newArchive(t, exports)
	ctx := session.WithSession(context.Background(), session.Session{UserID: "u-1", StationCode: "34.17115"})
	req := report.ExportRequest{Kind: report.KindFuelSales, Window: period.Window{Year: 2024, Month: 5}}

	rec, err := svc.Save(ctx, report.KindFuelSales, req, pdf)

	require.NoError(t, err)
	assert.Len(t, rec.ID, 36)
	assert.Equal(t, byte('7'), rec.ID[14])
	assert.Equal(t, "2024-05", rec.Period)
	assert.Equal(t, "u-1", rec.CreatedBy)
	assert.Equal(t, "34.17115", rec.StationCode)
	assert.EqualValues(t, len(pdf.Data), rec.Size)
	assert.Len(t, rec.Checksum, 64)
	assert.Equal(t, "2024/05/"+rec.ID+"_"+pdf.Filename, rec.StoragePath)

	ok, err := files.Exists(ctx, rec.StoragePath)
	require.NoError(t, err)
	assert.True(t, ok)

	got, data, err := svc.Open(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, pdf.Filename, got.Filename)
	assert.Equal(t, pdf.Data, data)
}

func TestSave_RemovesFileWhenMetadataFails(t *testing.T) {
	dir := t.TempDir()
	exports := &fakeExports{createErr: errors.New("db down")}
	svc, _ := newArchiveIn(t, dir, exports)

	_, err := svc.Save(context.Background(), report.KindFuelSales, report.ExportRequest{}, pdf)

	require.Error(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSave_RollsBackRowWhenUploadFails(t *testing.T) {
	exports := &fakeExports{}
	tx := &fakeTx{exports: exports}
	files, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	svc := NewArchiveService(exports, failingUpload{files}, tx)

	rec, err := svc.Save(context.Background(), report.KindFuelSales, report.ExportRequest{}, pdf)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store export")
	assert.Nil(t, rec)
	assert.Equal(t, 1, tx.calls)
	assert.Empty(t, exports.records)
}

func TestSave_RemovesFileWhenCommitFails(t *testing.T) {
	dir := t.TempDir()
	exports := &fakeExports{}
	svc, _ := newArchiveIn(t, dir, exports)
	svc.tx = &fakeTx{exports: exports, commitErr: errors.New("commit failed")}

	_, err := svc.Save(context.Background(), report.KindFuelSales, report.ExportRequest{}, pdf)

	require.Error(t, err)
	assert.Empty(t, exports.records)
	entries, err := os.ReadDir(filepath.Join(dir, "2024", "05"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestOpen_ChecksumMismatch(t *testing.T) {
	exports := &fakeExports{}
	svc, files := newArchive(t, exports)
	rec, err := svc.Save(context.Background(), report.KindFuelSales, report.ExportRequest{}, pdf)
	require.NoError(t, err)

	_, err = files.Upload(context.Background(), strings.NewReader("tampered"), rec.StoragePath)
	require.NoError(t, err)

	_, _, err = svc.Open(context.Background(), rec.ID)
	assert.ErrorContains(t, err, "checksum mismatch")
}

func TestOpen_NotFound(t *testing.T) {
	svc, _ := newArchive(t, &fakeExports{})

	_, _, err := svc.Open(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, report.ErrExportNotFound)

	_, _, err = svc.Open(context.Background(), "0190a6d2-7c4e-7b1a-8c3d-1f2e3d4c5b6a")
	assert.ErrorIs(t, err, report.ErrExportNotFound)
}

func TestList_ClampsPaging(t *testing.T) {
	exports := &fakeExports{}
	svc, _ := newArchive(t, exports)

	_, _, err := svc.List(context.Background(), 0, -5)
	require.NoError(t, err)
	assert.Equal(t, defaultLimit, exports.limit)
	assert.Equal(t, 0, exports.offset)

	_, _, err = svc.List(context.Background(), 1000, 40)
	require.NoError(t, err)
	assert.Equal(t, maxLimit, exports.limit)
	assert.Equal(t, 40, exports.offset)
}

func TestPeriodKey(t *testing.T) {
	assert.Equal(t, "2024-05", periodKey(period.Window{Year: 2024, Month: 5}))
	assert.Equal(t, "2024", periodKey(period.Window{Year: 2024}))
	assert.Equal(t, "", periodKey(period.Window{}))
}

func TestDisabled(t *testing.T) {
	var a report.ArchiveService = Disabled{}

	rec, err := a.Save(context.Background(), report.KindFuelSales, report.ExportRequest{}, pdf)
	assert.NoError(t, err)
	assert.Nil(t, rec)

	list, total, err := a.List(context.Background(), 10, 0)
	assert.NoError(t, err)
	assert.Empty(t, list)
	assert.Zero(t, total)
}
