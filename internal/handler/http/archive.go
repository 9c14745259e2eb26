package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/report"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/handler/http/response"
)

type ArchiveHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Download(w http.ResponseWriter, r *http.Request)
}

type archiveHandlerImpl struct {
	archiveService report.ArchiveService
}

func NewArchiveHandler(archiveService report.ArchiveService) ArchiveHandler {
	return &archiveHandlerImpl{archiveService: archiveService}
}

// List handles GET /exports?limit=&offset=
func (h *archiveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 20)
	offset := queryInt(r, "offset", 0)

	records, total, err := h.archiveService.List(r.Context(), limit, offset)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if records == nil {
		records = []report.ExportRecord{}
	}
	response.SuccessWithMeta(w, records, &response.Meta{Limit: limit, Offset: offset, TotalItems: total})
}

// Download handles GET /exports/{id}
func (h *archiveHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	rec, data, err := h.archiveService.Open(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Attachment(w, rec.Filename, rec.ContentType, data)
}
