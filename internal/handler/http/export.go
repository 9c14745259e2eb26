package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/checklist"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/report"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/session"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/handler/http/response"
)

type ExportHandler interface {
	// ExportTabular renders the ledger named by the {kind} URL parameter
	ExportTabular(w http.ResponseWriter, r *http.Request)
	// ExportChecklist renders the monthly grid of the {variant} checklist
	ExportChecklist(w http.ResponseWriter, r *http.Request)
	ExportAttendances(w http.ResponseWriter, r *http.Request)
	ExportAbsences(w http.ResponseWriter, r *http.Request)
}

type exportHandlerImpl struct {
	reportService report.ReportService
}

func NewExportHandler(reportService report.ReportService) ExportHandler {
	return &exportHandlerImpl{reportService: reportService}
}

// exportRequest reads ?format=&year=&month=&day= and the session station code.
func exportRequest(r *http.Request, kind report.Kind) (report.ExportRequest, error) {
	format, err := report.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		return report.ExportRequest{}, err
	}
	window, err := parseWindow(r)
	if err != nil {
		return report.ExportRequest{}, err
	}
	req := report.ExportRequest{Kind: kind, Format: format, Window: window}
	if sess, ok := session.FromContext(r.Context()); ok {
		req.StationCode = sess.StationCode
	}
	return req, nil
}

func (h *exportHandlerImpl) send(w http.ResponseWriter, file *report.File, err error) {
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if file.ID != "" {
		w.Header().Set("X-Export-ID", file.ID)
	}
	response.Attachment(w, file.Filename, file.ContentType, file.Data)
}

// ExportTabular handles GET /{section}/{kind}/export
func (h *exportHandlerImpl) ExportTabular(w http.ResponseWriter, r *http.Request) {
	req, err := exportRequest(r, report.Kind(chi.URLParam(r, "kind")))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	file, err := h.reportService.ExportTabular(r.Context(), req)
	h.send(w, file, err)
}

// ExportChecklist handles GET /{section}/checklists/{variant}/export?year=&month=
func (h *exportHandlerImpl) ExportChecklist(w http.ResponseWriter, r *http.Request) {
	req, err := exportRequest(r, report.KindChecklist)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	file, err := h.reportService.ExportChecklist(r.Context(), checklist.ExportRequest{
		Kind:        chi.URLParam(r, "variant"),
		Window:      req.Window,
		StationCode: req.StationCode,
	}, req.Format)
	h.send(w, file, err)
}

// ExportAttendances handles GET /supervisor/employee/attendances/export
func (h *exportHandlerImpl) ExportAttendances(w http.ResponseWriter, r *http.Request) {
	req, err := exportRequest(r, report.KindAttendances)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	file, err := h.reportService.ExportAttendances(r.Context(), req)
	h.send(w, file, err)
}

// ExportAbsences handles GET /supervisor/employee/absences/export
func (h *exportHandlerImpl) ExportAbsences(w http.ResponseWriter, r *http.Request) {
	req, err := exportRequest(r, report.KindAbsences)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	file, err := h.reportService.ExportAbsences(r.Context(), req)
	h.send(w, file, err)
}
