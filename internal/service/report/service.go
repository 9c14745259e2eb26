package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/attendance"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/checklist"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/delivery"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/fuel"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/fuelsale"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/issue"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/report"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/session"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/media"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/period"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/sse"
)

// Progress events published while an export runs.
const (
	EventExportStarted  = "export.started"
	EventExportProgress = "export.progress"
	EventExportFinished = "export.finished"
)

// ImageFetcher downloads every photo of a rekap before rendering starts.
type ImageFetcher interface {
	FetchAll(ctx context.Context, urls []string, progress media.Progress) []*report.Image
}

type Publisher interface {
	Publish(userID string, event sse.Event)
}

// Repositories are the upstream collections reports are built from.
type Repositories struct {
	Sales       fuelsale.FuelSaleRepository
	Issues      issue.IssueRepository
	Equipment   fuel.EquipmentRepository
	Stations    fuel.StationRepository
	Deliveries  delivery.DeliveryRepository
	Checklists  checklist.ChecklistRepository
	Attendances attendance.AttendanceRepository
}

type ReportServiceImpl struct {
	repos        Repositories
	fetcher      ImageFetcher
	resolvePhoto func(string) string
	renderers    map[report.Format]report.Renderer
	archive      report.ArchiveService
	events       Publisher
	loc          *time.Location
	imageWidthMM float64
	now          func() time.Time
}

func NewReportService(
	repos Repositories,
	fetcher ImageFetcher,
	resolvePhoto func(string) string,
	renderers []report.Renderer,
	archive report.ArchiveService,
	events Publisher,
	loc *time.Location,
	imageWidthMM float64,
) report.ReportService {
	if loc == nil {
		loc = time.UTC
	}
	byFormat := make(map[report.Format]report.Renderer, len(renderers))
	for _, r := range renderers {
		byFormat[r.Format()] = r
	}
	return &ReportServiceImpl{
		repos:        repos,
		fetcher:      fetcher,
		resolvePhoto: resolvePhoto,
		renderers:    byFormat,
		archive:      archive,
		events:       events,
		loc:          loc,
		imageWidthMM: imageWidthMM,
		now:          time.Now,
	}
}

func (s *ReportServiceImpl) header(ctx context.Context, stationCode string, w period.Window) Header {
	if stationCode == "" {
		if sess, ok := session.FromContext(ctx); ok {
			stationCode = sess.StationCode
		}
	}
	return Header{
		StationCode: stationCode,
		Window:      w,
		GeneratedAt: s.now(),
		Location:    s.loc,
	}
}

func (s *ReportServiceImpl) check(req *report.ExportRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if req.Format == "" {
		req.Format = report.FormatPDF
	}
	if _, ok := s.renderers[req.Format]; !ok {
		return report.ErrUnsupportedFormat
	}
	return nil
}

func noRecords(w period.Window) error {
	if w.IsZero() {
		return report.ErrNoRecords
	}
	return report.ErrNoRecordsInPeriod
}

// ExportTabular builds one of the ledger reports.
func (s *ReportServiceImpl) ExportTabular(ctx context.Context, req report.ExportRequest) (*report.File, error) {
	if err := s.check(&req); err != nil {
		return nil, err
	}

	h := s.header(ctx, req.StationCode, req.Window)
	w, loc := req.Window, s.loc

	var (
		doc  *report.Document
		rows int
	)
	switch req.Kind {
	case report.KindFuelSales:
		list, err := s.repos.Sales.List(ctx)
		if err != nil {
			return nil, err
		}
		list = period.Filter(list, w, loc, func(x fuelsale.FuelSale) time.Time { return x.Tanggal.Time })
		doc, rows = FuelSalesDocument(list, h), len(list)

	case report.KindIssueReports:
		list, err := s.repos.Issues.ListReports(ctx)
		if err != nil {
			return nil, err
		}
		list = period.Filter(list, w, loc, issue.Report.Date)
		doc, rows = IssueReportsDocument(list, h), len(list)

	case report.KindDamageReports:
		list, err := s.repos.Issues.ListDamages(ctx)
		if err != nil {
			return nil, err
		}
		list = period.Filter(list, w, loc, issue.Damage.Date)
		doc, rows = DamageReportsDocument(list, h), len(list)

	case report.KindPumpUnits:
		list, err := s.repos.Equipment.ListPumpUnits(ctx)
		if err != nil {
			return nil, err
		}
		list = period.Filter(list, w, loc, func(x fuel.PumpUnit) time.Time { return x.CreatedAt.Time })
		doc, rows = PumpUnitsDocument(list, h), len(list)

	case report.KindStockDeliveries:
		list, err := s.repos.Deliveries.ListStockDeliveries(ctx)
		if err != nil {
			return nil, err
		}
		list = period.Filter(list, w, loc, func(x delivery.StockDelivery) time.Time { return x.CreatedAt.Time })
		doc, rows = StockDeliveriesDocument(list, h), len(list)

	case report.KindStationSummary:
		list, err := s.repos.Stations.ListStations(ctx)
		if err != nil {
			return nil, err
		}
		doc, rows = StationSummaryDocument(list, h), len(list)

	default:
		return nil, report.ErrUnknownReport
	}

	if rows == 0 {
		return nil, noRecords(w)
	}
	return s.render(ctx, req, doc, rows)
}

// ExportChecklist renders the monthly calendar grid of one checklist variant.
func (s *ReportServiceImpl) ExportChecklist(ctx context.Context, req checklist.ExportRequest, f report.Format) (*report.File, error) {
	if !req.Window.HasMonth() {
		return nil, report.ErrPeriodRequired
	}
	if _, ok := s.renderers[f]; !ok {
		return nil, report.ErrUnsupportedFormat
	}
	v, err := checklist.Lookup(req.Kind)
	if err != nil {
		return nil, err
	}

	raw, err := s.repos.Checklists.List(ctx, v)
	if err != nil {
		return nil, err
	}
	entries, err := v.NormalizeAll(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s checklist: %w", v.Kind, err)
	}
	entries = period.Filter(entries, req.Window, s.loc, func(e checklist.Entry) time.Time { return e.Tanggal })
	if len(entries) == 0 {
		return nil, report.ErrNoRecordsInPeriod
	}

	doc, err := ChecklistGrid(v, entries, s.header(ctx, req.StationCode, req.Window))
	if err != nil {
		return nil, err
	}
	return s.render(ctx, report.ExportRequest{
		Kind:        report.KindChecklist,
		Format:      f,
		Window:      req.Window,
		StationCode: req.StationCode,
	}, doc, len(entries))
}

// ExportAttendances builds the clock-in rekap. Every photo is fetched
// before the document is assembled.
func (s *ReportServiceImpl) ExportAttendances(ctx context.Context, req report.ExportRequest) (*report.File, error) {
	if err := s.check(&req); err != nil {
		return nil, err
	}
	list, err := s.repos.Attendances.ListAttendances(ctx)
	if err != nil {
		return nil, err
	}
	list = period.Filter(list, req.Window, s.loc, func(x attendance.Attendance) time.Time { return x.CreatedAt.Time })
	if len(list) == 0 {
		return nil, noRecords(req.Window)
	}

	urls := make([]string, len(list))
	for i, a := range list {
		urls[i] = s.resolvePhoto(a.Photo)
	}

	req.Kind = report.KindAttendances
	images := s.fetchImages(ctx, req.Kind, urls)
	doc := AttendanceRekap(list, images, s.header(ctx, req.StationCode, req.Window), s.imageWidthMM)
	return s.renderNotify(ctx, req, doc, len(list))
}

// ExportAbsences builds the leave-request rekap with attachment photos.
func (s *ReportServiceImpl) ExportAbsences(ctx context.Context, req report.ExportRequest) (*report.File, error) {
	if err := s.check(&req); err != nil {
		return nil, err
	}
	list, err := s.repos.Attendances.ListAbsences(ctx)
	if err != nil {
		return nil, err
	}
	list = period.Filter(list, req.Window, s.loc, func(x attendance.Absence) time.Time { return x.TanggalAwal.Time })
	if len(list) == 0 {
		return nil, noRecords(req.Window)
	}

	urls := make([]string, len(list))
	for i, a := range list {
		urls[i] = s.resolvePhoto(a.Lampiran)
	}

	req.Kind = report.KindAbsences
	images := s.fetchImages(ctx, req.Kind, urls)
	doc := AbsenceRekap(list, images, s.header(ctx, req.StationCode, req.Window), s.imageWidthMM)
	return s.renderNotify(ctx, req, doc, len(list))
}

func (s *ReportServiceImpl) subject(ctx context.Context) string {
	sess, ok := session.FromContext(ctx)
	if !ok {
		return ""
	}
	return sess.Subject()
}

func (s *ReportServiceImpl) publish(ctx context.Context, name string, data map[string]interface{}) {
	sub := s.subject(ctx)
	if s.events == nil || sub == "" {
		return
	}
	s.events.Publish(sub, sse.Event{UserID: sub, Event: name, Data: data})
}

func (s *ReportServiceImpl) fetchImages(ctx context.Context, kind report.Kind, urls []string) []*report.Image {
	s.publish(ctx, EventExportStarted, map[string]interface{}{"kind": kind, "total": len(urls)})
	return s.fetcher.FetchAll(ctx, urls, func(done, total int) {
		s.publish(ctx, EventExportProgress, map[string]interface{}{"kind": kind, "done": done, "total": total})
	})
}

func (s *ReportServiceImpl) renderNotify(ctx context.Context, req report.ExportRequest, doc *report.Document, rows int) (*report.File, error) {
	file, err := s.render(ctx, req, doc, rows)
	data := map[string]interface{}{"kind": req.Kind}
	if err != nil {
		data["error"] = err.Error()
	} else {
		data["filename"] = file.Filename
	}
	s.publish(ctx, EventExportFinished, data)
	return file, err
}

// render turns doc into a file and archives it. Archive failures are logged
// and do not fail the download.
func (s *ReportServiceImpl) render(ctx context.Context, req report.ExportRequest, doc *report.Document, rows int) (*report.File, error) {
	r, ok := s.renderers[req.Format]
	if !ok {
		return nil, report.ErrUnsupportedFormat
	}
	data, err := r.Render(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", req.Kind, err)
	}

	file := &report.File{
		Filename:    doc.Filename + "." + string(req.Format),
		ContentType: req.Format.ContentType(),
		Data:        data,
		RowCount:    rows,
	}

	if s.archive != nil {
		rec, err := s.archive.Save(ctx, req.Kind, req, file)
		if err != nil {
			slog.Warn("export not archived", "kind", req.Kind, "filename", file.Filename, "error", err)
		} else if rec != nil {
			file.ID = rec.ID
		}
	}

	slog.Info("export generated", "kind", req.Kind, "format", req.Format, "rows", rows, "bytes", len(data))
	return file, nil
}
