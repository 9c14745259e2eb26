package report

import (
	"errors"
	"testing"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/period"
	"github.com/stretchr/testify/assert"
)

func TestImage_HeightFor(t *testing.T) {
	img := Image{Width: 300, Height: 400}
	assert.InDelta(t, 40.0, img.HeightFor(30), 1e-9)
	assert.InDelta(t, 30.0, Image{}.HeightFor(30), 1e-9)
}

func TestDocument_Validate(t *testing.T) {
	doc := &Document{
		Columns: []Column{{Header: "A"}, {Header: "B"}},
		Rows:    []Row{{Cells: []Cell{Text("1"), Text("2")}}},
	}
	assert.NoError(t, doc.Validate())

	doc.Rows = append(doc.Rows, Row{Cells: []Cell{Text("only one")}})
	assert.ErrorIs(t, doc.Validate(), ErrRenderFailed)
}

func TestRow_Lines(t *testing.T) {
	r := Row{Cells: []Cell{Text("a"), Stack("T (P)", "B (S)", "T (M)"), {}}}
	assert.Equal(t, 3, r.Lines())
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	assert.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	f, err = ParseFormat("XLSX")
	assert.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	_, err = ParseFormat("csv")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestNoRecordsInPeriod_UnwrapsToNoRecords(t *testing.T) {
	assert.True(t, errors.Is(ErrNoRecordsInPeriod, ErrNoRecords))
	assert.Equal(t, "Tidak ada data pada bulan dan tahun yang dipilih.", ErrNoRecordsInPeriod.Error())
}

func TestExportRequest_Validate(t *testing.T) {
	req := ExportRequest{Window: period.Window{Year: 2024, Month: 5}}
	assert.NoError(t, req.Validate())

	req = ExportRequest{Window: period.Window{Year: 1999, Month: 13}}
	err := req.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "month")
	assert.Contains(t, err.Error(), "year")
}
