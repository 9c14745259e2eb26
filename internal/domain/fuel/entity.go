package fuel

import (
	"github.com/shopspring/decimal"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/user"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/utils"
)

type FuelType string

const (
	Pertalite     FuelType = "PERTALITE"
	Pertamax      FuelType = "PERTAMAX"
	PertamaxTurbo FuelType = "PERTAMAX_TURBO"
	Biosolar      FuelType = "BIOSOLAR"
	DexLite       FuelType = "DEXLITE"
	PertaminaDex  FuelType = "PERTAMINA_DEX"
)

// FuelTypes is the display order used by every grouping.
var FuelTypes = []FuelType{Pertalite, Pertamax, PertamaxTurbo, Biosolar, DexLite, PertaminaDex}

var fuelLabels = map[FuelType]string{
	Pertalite:     "Pertalite",
	Pertamax:      "Pertamax",
	PertamaxTurbo: "Pertamax Turbo",
	Biosolar:      "Biosolar",
	DexLite:       "DexLite",
	PertaminaDex:  "Pertamina Dex",
}

func (f FuelType) IsValid() bool {
	_, ok := fuelLabels[f]
	return ok
}

// Label is the product name printed on reports.
func (f FuelType) Label() string {
	if l, ok := fuelLabels[f]; ok {
		return l
	}
	return string(f)
}

// Order is the position of f in FuelTypes; unknown types sort last.
func (f FuelType) Order() int {
	for i, t := range FuelTypes {
		if t == f {
			return i
		}
	}
	return len(FuelTypes)
}

type Tank struct {
	ID            utils.ID        `json:"id"`
	CodeTank      string          `json:"code_tank"`
	FuelType      FuelType        `json:"fuel_type"`
	Capacity      decimal.Decimal `json:"capacity"`
	CurrentVolume decimal.Decimal `json:"current_volume"`
	Spbu          *Station        `json:"spbu,omitempty"`
}

// FillRatio is current volume over capacity, clamped to [0, 1] for display.
func (t Tank) FillRatio() float64 {
	if !t.Capacity.IsPositive() {
		return 0
	}
	r, _ := t.CurrentVolume.Div(t.Capacity).Float64()
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

type Nozzle struct {
	ID         utils.ID  `json:"id"`
	KodeNozzle string    `json:"kodeNozzle"`
	Tank       *Tank     `json:"tank,omitempty"`
	Pump       *PumpUnit `json:"pump,omitempty"`
}

// FuelType returns the fuel dispensed by the nozzle's tank, or "".
func (n Nozzle) FuelType() FuelType {
	if n.Tank == nil {
		return ""
	}
	return n.Tank.FuelType
}

// Label renders the nozzle as "code (fuel type)".
func (n Nozzle) Label() string {
	if ft := n.FuelType(); ft != "" {
		return n.KodeNozzle + " (" + string(ft) + ")"
	}
	return n.KodeNozzle
}

type PumpUnit struct {
	ID        utils.ID   `json:"id"`
	KodePompa string     `json:"kodePompa"`
	Nozzles   []Nozzle   `json:"nozzle"`
	CreatedAt utils.Time `json:"createdAt"`
}

// Station is a gas station (SPBU) with the nested collections the admin
// monitoring view reads.
type Station struct {
	ID       utils.ID    `json:"id"`
	CodeSpbu string      `json:"code_spbu"`
	Address  string      `json:"address"`
	Users    []user.User `json:"users,omitempty"`
	Tanks    []Tank      `json:"tanks,omitempty"`
}
