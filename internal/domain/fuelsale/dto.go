package fuelsale

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/shift"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/period"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/utils"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/validator"
)

type UpsertFuelSaleRequest struct {
	NozzleID      string          `json:"nozzleId" validate:"required"`
	Tanggal       string          `json:"tanggal" validate:"required"`
	Shift         shift.Shift     `json:"shift" validate:"required,oneof=PAGI SIANG MALAM"`
	StandAwal     decimal.Decimal `json:"standAwal"`
	StandAkhir    decimal.Decimal `json:"standAkhir"`
	HargaPerLiter decimal.Decimal `json:"hargaPerLiter"`
}

func (r *UpsertFuelSaleRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}
	if _, err := utils.ParseTime(r.Tanggal); err != nil {
		return validator.ValidationErrors{{Field: "tanggal", Message: "must be a date (YYYY-MM-DD) or ISO8601 timestamp"}}
	}
	return nil
}

// Payload is the body sent upstream: the request plus the derived totals.
type Payload struct {
	NozzleID      string      `json:"nozzleId"`
	Tanggal       string      `json:"tanggal"`
	Shift         shift.Shift `json:"shift"`
	StandAwal     json.Number `json:"standAwal"`
	StandAkhir    json.Number `json:"standAkhir"`
	JumlahLiter   json.Number `json:"jumlahLiter"`
	HargaPerLiter json.Number `json:"hargaPerLiter"`
	TotalHarga    json.Number `json:"totalHarga"`
}

// ToPayload validates the meter readings and fills in the derived fields.
func (r UpsertFuelSaleRequest) ToPayload() (Payload, error) {
	liters, total, err := Compute(r.StandAwal, r.StandAkhir, r.HargaPerLiter)
	if err != nil {
		return Payload{}, err
	}
	tanggal := r.Tanggal
	if ts, err := utils.ParseTime(r.Tanggal); err == nil && !ts.IsZero() {
		tanggal = ts.UTC().Format(time.RFC3339Nano)
	}
	return Payload{
		NozzleID:      r.NozzleID,
		Tanggal:       tanggal,
		Shift:         r.Shift,
		StandAwal:     json.Number(r.StandAwal.String()),
		StandAkhir:    json.Number(r.StandAkhir.String()),
		JumlahLiter:   json.Number(liters.String()),
		HargaPerLiter: json.Number(r.HargaPerLiter.String()),
		TotalHarga:    json.Number(total.String()),
	}, nil
}

type ListFuelSaleRequest struct {
	Window period.Window
}

type FuelSaleListResponse struct {
	Sales       []FuelSale      `json:"sales"`
	TotalLiter  decimal.Decimal `json:"total_liter"`
	TotalHarga  decimal.Decimal `json:"total_harga"`
	RecordCount int             `json:"record_count"`
}
