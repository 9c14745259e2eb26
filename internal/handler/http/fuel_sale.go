package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/fuelsale"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/handler/http/response"
)

type FuelSaleHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type fuelSaleHandlerImpl struct {
	fuelSaleService fuelsale.FuelSaleService
}

func NewFuelSaleHandler(fuelSaleService fuelsale.FuelSaleService) FuelSaleHandler {
	return &fuelSaleHandlerImpl{fuelSaleService: fuelSaleService}
}

// List handles GET /supervisor/fuel-sales?year=&month=
func (h *fuelSaleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindow(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	res, err := h.fuelSaleService.List(r.Context(), fuelsale.ListFuelSaleRequest{Window: window})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, res)
}

// Create handles POST /supervisor/fuel-sales
func (h *fuelSaleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req fuelsale.UpsertFuelSaleRequest
	if err := decodeBody(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	res, err := h.fuelSaleService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Data penjualan berhasil ditambahkan", res)
}

// Update handles PUT /supervisor/fuel-sales/{id}
func (h *fuelSaleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req fuelsale.UpsertFuelSaleRequest
	if err := decodeBody(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	res, err := h.fuelSaleService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Data penjualan berhasil diperbarui", res)
}

// Delete handles DELETE /supervisor/fuel-sales/{id}?confirm=true
func (h *fuelSaleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	res, err := h.fuelSaleService.Delete(r.Context(), chi.URLParam(r, "id"), confirmed(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Data penjualan berhasil dihapus", res)
}
