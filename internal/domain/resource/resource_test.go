package resource

import (
	"encoding/json"
	"testing"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/user"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	d, err := Lookup(user.SectionSupervisor, "tanks")
	require.NoError(t, err)
	assert.Equal(t, "/supervisor/tanks", d.Path)

	_, err = Lookup(user.SectionOB, "tanks")
	assert.ErrorIs(t, err, ErrNotFound)

	d, err = Lookup(user.SectionOB, "checklist-garden")
	require.NoError(t, err)
	assert.Equal(t, Form, d.Encoding)
	assert.Contains(t, d.Required, "aktifitasGarden")
}

func TestInSection(t *testing.T) {
	names := map[string]bool{}
	for _, d := range InSection(user.SectionAdmin) {
		names[d.Name] = true
	}
	assert.Equal(t, map[string]bool{"spbus": true, "users": true}, names)
}

func TestPrepare_MissingFields(t *testing.T) {
	d, _ := Lookup(user.SectionSupervisor, "tanks")

	_, err := d.Prepare(Record{"code_tank": "T-01", "capacity": ""}, false)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "capacity")
	assert.Contains(t, fields, "fuel_type")
	assert.Contains(t, fields, "current_volume")
	assert.NotContains(t, fields, "code_tank")
}

func TestPrepare_ConvertsNumbersAndDropsUnknownFields(t *testing.T) {
	d, _ := Lookup(user.SectionSupervisor, "tanks")

	body, err := d.Prepare(Record{
		"code_tank":      "T-01",
		"fuel_type":      "PERTALITE",
		"capacity":       "15000",
		"current_volume": 7500.5,
		"spbuId":         9,
	}, false)

	require.NoError(t, err)
	assert.Equal(t, json.Number("15000"), body["capacity"])
	assert.Equal(t, json.Number("7500.5"), body["current_volume"])
	assert.NotContains(t, body, "spbuId")
}

func TestPrepare_RejectsBadEnumAndNumber(t *testing.T) {
	d, _ := Lookup(user.SectionSupervisor, "tanks")

	_, err := d.Prepare(Record{
		"code_tank":      "T-01",
		"fuel_type":      "AVTUR",
		"capacity":       "banyak",
		"current_volume": "1",
	}, false)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "fuel_type")
	assert.Contains(t, verrs.ToMap(), "capacity")
}

func TestPrepare_UpdateUsesUpdateRequired(t *testing.T) {
	d, _ := Lookup(user.SectionAdmin, "users")

	_, err := d.Prepare(Record{"name": "Budi", "email": "budi@spbu.id"}, true)
	assert.NoError(t, err)

	_, err = d.Prepare(Record{"name": "Budi", "email": "budi@spbu.id"}, false)
	assert.Error(t, err)
}

func TestPrepare_ReadOnly(t *testing.T) {
	d, _ := Lookup(user.SectionAdmin, "spbus")
	_, err := d.Prepare(Record{}, false)
	assert.ErrorIs(t, err, ErrReadOnly)
}

func TestPrepare_DerivesTankDeliveryDifferences(t *testing.T) {
	d, _ := Lookup(user.SectionSupervisor, "tank-deliveries")

	body, err := d.Prepare(Record{
		"tankId":                 "3",
		"deliveryDate":           "2024-05-01",
		"shift":                  "PAGI",
		"noMobilTangki":          "B 1234 XY",
		"volumePnbp":             "8000",
		"volumePenerimaanAktual": "7950",
		"stockAkhirPembukuan":    "12000",
		"stockAkhirAktual":       "12010",
	}, false)

	require.NoError(t, err)
	assert.Equal(t, json.Number("-50"), body["lebihKurangPenerimaan"])
	assert.Equal(t, json.Number("10"), body["lebihKurangOperasional"])
	assert.Equal(t, "2024-05-01T00:00:00Z", body["deliveryDate"])
}

func TestPrepare_StockDeliveryDefaultsToZero(t *testing.T) {
	d, _ := Lookup(user.SectionSupervisor, "stock-deliveries")

	body, err := d.Prepare(Record{"volumePertalite": "100"}, false)

	require.NoError(t, err)
	assert.Equal(t, json.Number("100"), body["volumePertalite"])
	assert.Equal(t, json.Number("0"), body["volumeBiosolar"])
}

func TestPrepare_BlankDateBecomesNull(t *testing.T) {
	d, _ := Lookup(user.SectionSupervisor, "equipment-damage-report")

	body, err := d.Prepare(Record{
		"namaUnit":                "Dispenser 2",
		"deskripsiKerusakan":      "Display mati",
		"tanggalPerbaikanSelesai": "",
	}, false)

	require.NoError(t, err)
	v, ok := body["tanggalPerbaikanSelesai"]
	assert.True(t, ok)
	assert.Nil(t, v)
}
