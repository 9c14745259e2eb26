package report

import (
	"testing"
	"time"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/attendance"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/fuel"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/issue"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/report"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/user"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/period"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func header() Header {
	return Header{GeneratedAt: time.Date(2024, 5, 17, 3, 0, 0, 0, time.UTC), Location: time.UTC}
}

func TestHeader_MetaAndFilename(t *testing.T) {
	h := header()
	assert.Equal(t, []string{"Tanggal Cetak: 17/05/2024"}, h.meta())
	assert.Equal(t, "Laporan", h.filename("Laporan"))

	h.StationCode = "34.17115"
	h.Window = period.Window{Year: 2024}
	assert.Equal(t, []string{"Tanggal Cetak: 17/05/2024", "SPBU: 34.17115", "Periode: 2024"}, h.meta())
	assert.Equal(t, "Laporan_2024", h.filename("Laporan"))
}

func TestPumpUnitsDocument_StacksNozzles(t *testing.T) {
	units := []fuel.PumpUnit{
		{ID: "1", KodePompa: "P-01", Nozzles: []fuel.Nozzle{
			{KodeNozzle: "N-01", Tank: &fuel.Tank{FuelType: fuel.Pertalite}},
			{KodeNozzle: "N-02"},
		}},
		{ID: "2", KodePompa: "P-02"},
	}

	doc := PumpUnitsDocument(units, header())

	require.NoError(t, doc.Validate())
	assert.Equal(t, []string{"N-01 (PERTALITE)", "N-02 (-)"}, doc.Rows[0].Cells[2].Lines)
	assert.Equal(t, "-", doc.Rows[1].Cells[2].String())
	assert.Equal(t, "Daftar_Pump_Units", doc.Filename)
}

func TestIssueReportsDocument_StationFromFirstReport(t *testing.T) {
	reports := []issue.Report{{
		ID:           "9",
		Spbu:         &user.StationRef{CodeSpbu: "34.17115"},
		JudulLaporan: "Pompa macet",
		Tanggal:      utils.Time{Time: time.Date(2024, 5, 1, 2, 0, 0, 0, time.UTC)},
	}}

	doc := IssueReportsDocument(reports, header())

	assert.Equal(t, "Laporan_Masalah_34.17115", doc.Filename)
	assert.Contains(t, doc.Meta, "SPBU: 34.17115")
	assert.Equal(t, "-", doc.Rows[0].Cells[3].String())
	assert.Equal(t, "01/05/2024 02:00", doc.Rows[0].Cells[1].String())
}

func TestDamageReportsDocument_EmptyDates(t *testing.T) {
	doc := DamageReportsDocument([]issue.Damage{{NamaUnit: "Dispenser 2"}}, header())

	require.NoError(t, doc.Validate())
	for _, c := range doc.Rows[0].Cells[4:] {
		assert.Equal(t, "-", c.String())
	}
}

func TestAbsenceRekap(t *testing.T) {
	rows := []attendance.Absence{{
		JenisPengajuan: attendance.AbsenceSakit,
		TanggalAwal:    utils.Time{Time: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		TanggalAkhir:   utils.Time{Time: time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)},
		Lampiran:       "/uploads/surat.jpg",
	}}

	doc := AbsenceRekap(rows, []*report.Image{nil}, header(), 30)

	require.NoError(t, doc.Validate())
	assert.Equal(t, []string{"01/05/2024", "s/d 03/05/2024"}, doc.Rows[0].Cells[3].Lines)
	assert.Equal(t, PhotoUnavailable, doc.Rows[0].Cells[5].String())
	assert.Equal(t, "-", doc.Rows[0].Cells[1].String())
}

func TestAttendanceRekap_ShortImageSlice(t *testing.T) {
	rows := []attendance.Attendance{{Photo: "/a.jpg"}, {Photo: "/b.jpg"}}

	doc := AttendanceRekap(rows, nil, header(), 25)

	require.Len(t, doc.Rows, 2)
	assert.Equal(t, PhotoUnavailable, doc.Rows[1].Cells[5].String())
}

func TestSafeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"34.17115", "34.17115"},
		{" SPBU Merdeka ", "SPBU_Merdeka"},
		{"a/b\\c", "a-b-c"},
		{"NA", "NA"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, safeName(tt.in), tt.in)
	}
}
