package delivery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/fuel"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/shift"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/numeric"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/utils"
)

// VolumePrefix marks the per-product volume fields of a stock delivery.
const VolumePrefix = "volume"

// Volume is one "volume<Product>" field of a stock delivery.
type Volume struct {
	Field string          `json:"field"`
	Value decimal.Decimal `json:"value"`
}

// Name is the product name: the field name without the volume prefix.
func (v Volume) Name() string {
	return strings.TrimPrefix(v.Field, VolumePrefix)
}

// StockDelivery records delivered volumes per product. Volumes keeps the
// fields in the order the API sent them.
type StockDelivery struct {
	ID        utils.ID   `json:"id"`
	Volumes   []Volume   `json:"volumes"`
	CreatedAt utils.Time `json:"createdAt"`
}

func (s *StockDelivery) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("stock delivery must be an object")
	}
	*s = StockDelivery{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		switch {
		case key == "id":
			if err := json.Unmarshal(raw, &s.ID); err != nil {
				return fmt.Errorf("id: %w", err)
			}
		case key == "createdAt":
			if err := json.Unmarshal(raw, &s.CreatedAt); err != nil {
				return fmt.Errorf("createdAt: %w", err)
			}
		case strings.HasPrefix(key, VolumePrefix) && len(key) > len(VolumePrefix):
			v, err := numeric.ParseRaw(raw)
			if err != nil {
				return &numeric.ParseError{Field: key, Value: string(raw), Err: err}
			}
			s.Volumes = append(s.Volumes, Volume{Field: key, Value: v})
		}
	}
	_, err = dec.Token()
	return err
}

func (s StockDelivery) MarshalJSON() ([]byte, error) {
	m := map[string]interface{}{
		"id":        s.ID,
		"createdAt": s.CreatedAt,
	}
	for _, v := range s.Volumes {
		m[v.Field] = v.Value
	}
	return json.Marshal(m)
}

// Volume returns the value of field, or zero when absent.
func (s StockDelivery) Volume(field string) decimal.Decimal {
	for _, v := range s.Volumes {
		if v.Field == field {
			return v.Value
		}
	}
	return decimal.Zero
}

// StockFields are the product columns of the stock delivery report.
var StockFields = []struct {
	Field string
	Label string
}{
	{"volumePertalite", "Pertalite"},
	{"volumePertamax", "Pertamax"},
	{"volumePertamaxTurbo", "Pertamax Turbo"},
	{"volumeBiosolar", "Biosolar"},
	{"volumeDexLite", "DexLite"},
	{"volumePertaminaDex", "Pertamina Dex"},
}

// TankDelivery is a fuel drop into one tank, with the reconciliation figures
// recorded on receipt.
type TankDelivery struct {
	ID                           utils.ID        `json:"id"`
	TankID                       utils.ID        `json:"tankId"`
	DeliveryDate                 utils.Time      `json:"deliveryDate"`
	Shift                        shift.Shift     `json:"shift"`
	StockAwalShift               decimal.Decimal `json:"stockAwalShift"`
	NoMobilTangki                string          `json:"noMobilTangki"`
	NoPnbp                       string          `json:"noPnbp,omitempty"`
	VolumePnbp                   decimal.Decimal `json:"volumePnbp"`
	JamPenerimaan                string          `json:"jamPenerimaan,omitempty"`
	VolumeSebelumPenerimaan      decimal.Decimal `json:"volumeSebelumPenerimaan"`
	VolumePenerimaanAktual       decimal.Decimal `json:"volumePenerimaanAktual"`
	LebihKurangPenerimaan        decimal.Decimal `json:"lebihKurangPenerimaan"`
	PengeluaranTotalisatorNozzle decimal.Decimal `json:"pengeluaranTotalisatorNozzle"`
	StockAkhirPembukuan          decimal.Decimal `json:"stockAkhirPembukuan"`
	StockAkhirAktual             decimal.Decimal `json:"stockAkhirAktual"`
	LebihKurangOperasional       decimal.Decimal `json:"lebihKurangOperasional"`
	Tank                         *fuel.Tank      `json:"tank,omitempty"`
}

// FuelQuality is a density check around a delivery.
type FuelQuality struct {
	ID                        utils.ID        `json:"id"`
	TankID                    utils.ID        `json:"tankId"`
	Tanggal                   utils.Time      `json:"tanggal"`
	NoMobilTangki             string          `json:"noMobilTangki"`
	NoPnbp                    string          `json:"noPnbp"`
	DensityObserved           decimal.Decimal `json:"densityObserved"`
	SuhuObserved              decimal.Decimal `json:"suhuObserved"`
	DensityStd                decimal.Decimal `json:"densityStd"`
	DensityStdPnbp            decimal.Decimal `json:"densityStdPnbp"`
	DensityStdPenerimaan      decimal.Decimal `json:"densityStdPenerimaan"`
	SelisihDensity            decimal.Decimal `json:"selisihDensity"`
	DensityStdPascaPenerimaan decimal.Decimal `json:"densityStdPascaPenerimaan"`
	TinggiAirTangkiPendam     decimal.Decimal `json:"tinggiAirTangkiPendam"`
	Tank                      *fuel.Tank      `json:"tank,omitempty"`
}
