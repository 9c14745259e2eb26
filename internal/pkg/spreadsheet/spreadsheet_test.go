package spreadsheet

import (
	"bytes"
	"image"
	"image/jpeg"
	"testing"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestRender_WritesTableAndLegend(t *testing.T) {
	doc := &report.Document{
		Title: "CHECKLIST KEBERSIHAN TOILET",
		Meta:  []string{"No. SPBU: 34.17115"},
		Columns: []report.Column{
			{Header: "Aktivitas", Width: 8},
			{Header: "1", Width: 2, Align: report.AlignCenter},
		},
		Rows: []report.Row{
			{Cells: []report.Cell{report.Text("KURAS BAK AIR"), report.Stack("T (P)", "B (S)")}},
		},
		LegendTitle: "Keterangan:",
		Legend:      []report.LegendItem{{Code: "T", Label: "Terlaksana"}},
	}

	out, err := NewRenderer().Render(doc)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "CHECKLIST KEBERSIHAN TOILET", title)

	meta, _ := f.GetCellValue(sheetName, "A2")
	assert.Equal(t, "No. SPBU: 34.17115", meta)

	header, _ := f.GetCellValue(sheetName, "B4")
	assert.Equal(t, "1", header)

	activity, _ := f.GetCellValue(sheetName, "A5")
	assert.Equal(t, "KURAS BAK AIR", activity)
	tokens, _ := f.GetCellValue(sheetName, "B5")
	assert.Equal(t, "T (P)\nB (S)", tokens)

	legend, _ := f.GetCellValue(sheetName, "A8")
	assert.Equal(t, "T = Terlaksana", legend)
}

func TestRender_EmbedsImages(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, jpeg.Encode(buf, image.NewRGBA(image.Rect(0, 0, 30, 40)), nil))

	doc := &report.Document{
		Title:        "REKAP ABSENSI",
		Columns:      []report.Column{{Header: "Nama", Width: 4}, {Header: "Foto", Width: 6}},
		Rows:         []report.Row{{Cells: []report.Cell{report.Text("Budi"), {Image: &report.Image{Data: buf.Bytes(), Width: 30, Height: 40}}}}},
		ImageWidthMM: 20,
	}

	out, err := NewRenderer().Render(doc)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	pics, err := f.GetPictures(sheetName, "B4")
	require.NoError(t, err)
	assert.Len(t, pics, 1)
}
