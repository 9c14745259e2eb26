package fuelsale

import (
	"github.com/shopspring/decimal"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/fuel"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/shift"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/user"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/utils"
)

// FuelSale is one meter reading pair for a nozzle and shift.
type FuelSale struct {
	ID            utils.ID        `json:"id"`
	NozzleID      utils.ID        `json:"nozzleId"`
	Nozzle        *fuel.Nozzle    `json:"nozzle,omitempty"`
	Tanggal       utils.Time      `json:"tanggal"`
	Shift         shift.Shift     `json:"shift"`
	StandAwal     decimal.Decimal `json:"standAwal"`
	StandAkhir    decimal.Decimal `json:"standAkhir"`
	JumlahLiter   decimal.Decimal `json:"jumlahLiter"`
	HargaPerLiter decimal.Decimal `json:"hargaPerLiter"`
	TotalHarga    decimal.Decimal `json:"totalHarga"`
	User          *user.User      `json:"user,omitempty"`
	CreatedAt     utils.Time      `json:"createdAt"`
}

// FuelType returns the fuel dispensed, or "" when the nozzle is not embedded.
func (s FuelSale) FuelType() fuel.FuelType {
	if s.Nozzle == nil {
		return ""
	}
	return s.Nozzle.FuelType()
}

// NozzleLabel renders the nozzle as "code (fuel type)", falling back to the ID.
func (s FuelSale) NozzleLabel() string {
	if s.Nozzle != nil {
		return s.Nozzle.Label()
	}
	return s.NozzleID.String()
}

// Compute derives the sold volume and the amount charged from two meter
// readings. The end reading may not be below the start reading.
func Compute(standAwal, standAkhir, hargaPerLiter decimal.Decimal) (liters, total decimal.Decimal, err error) {
	if standAwal.IsNegative() || standAkhir.IsNegative() {
		return decimal.Zero, decimal.Zero, ErrNegativeStand
	}
	if hargaPerLiter.IsNegative() {
		return decimal.Zero, decimal.Zero, ErrNegativePrice
	}
	if standAkhir.LessThan(standAwal) {
		return decimal.Zero, decimal.Zero, ErrStandAkhirBelowStandAwal
	}
	liters = standAkhir.Sub(standAwal)
	total = liters.Mul(hargaPerLiter)
	return liters, total, nil
}
