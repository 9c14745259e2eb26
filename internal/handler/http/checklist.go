package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/checklist"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/handler/http/response"
)

type ChecklistHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type checklistHandlerImpl struct {
	checklistService checklist.ChecklistService
}

func NewChecklistHandler(checklistService checklist.ChecklistService) ChecklistHandler {
	return &checklistHandlerImpl{checklistService: checklistService}
}

// List handles GET /{section}/checklists/{variant}?year=&month=
func (h *checklistHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindow(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	entries, err := h.checklistService.List(r.Context(), chi.URLParam(r, "variant"), window)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, entries)
}

// Create handles POST /{section}/checklists/{variant}
func (h *checklistHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req checklist.SubmitRequest
	if err := decodeBody(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	entries, err := h.checklistService.Create(r.Context(), chi.URLParam(r, "variant"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Checklist berhasil disimpan", entries)
}

// Update handles PUT /{section}/checklists/{variant}/{id}
func (h *checklistHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req checklist.SubmitRequest
	if err := decodeBody(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	entries, err := h.checklistService.Update(r.Context(), chi.URLParam(r, "variant"), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Checklist berhasil diperbarui", entries)
}

// Delete handles DELETE /{section}/checklists/{variant}/{id}?confirm=true
func (h *checklistHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	entries, err := h.checklistService.Delete(r.Context(), chi.URLParam(r, "variant"), chi.URLParam(r, "id"), confirmed(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Checklist berhasil dihapus", entries)
}
