package pdf

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jpegImage(t *testing.T, w, h int) *report.Image {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, x%h, color.RGBA{R: 200, A: 255})
	}
	buf := new(bytes.Buffer)
	require.NoError(t, jpeg.Encode(buf, img, nil))
	return &report.Image{Data: buf.Bytes(), Width: w, Height: h}
}

func TestRender_TabularDocument(t *testing.T) {
	doc := &report.Document{
		Title: "LAPORAN PENJUALAN BBM",
		Meta:  []string{"Dicetak pada: 01/05/2024", "Kode SPBU: 34.17115"},
		Columns: []report.Column{
			{Header: "No", Width: 1, Align: report.AlignCenter},
			{Header: "Nozzle", Width: 3},
			{Header: "Total", Width: 3, Align: report.AlignRight},
		},
		Rows: []report.Row{
			{Cells: []report.Cell{report.Text("1"), report.Text("N-01 (PERTALITE)"), report.Text("Rp 1.000.000")}},
			{Cells: []report.Cell{report.Text("2"), report.Stack("N-02", "N-03"), report.Text("Rp 0")}},
		},
	}

	out, err := NewRenderer().Render(doc)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRender_GridWithLegendAndImage(t *testing.T) {
	cols := []report.Column{{Header: "Aktivitas", Width: 8}}
	for d := 1; d <= 31; d++ {
		cols = append(cols, report.Column{Header: "x", Width: 2, Align: report.AlignCenter})
	}
	cells := make([]report.Cell, len(cols))
	cells[0] = report.Text("SAPU TAMAN")
	cells[1] = report.Stack("T (P)", "B (S)")
	cells[2] = report.Cell{Image: jpegImage(t, 40, 30)}

	doc := &report.Document{
		Title:        "CHECKLIST PERAWATAN TAMAN",
		Orientation:  report.Landscape,
		Columns:      cols,
		Rows:         []report.Row{{Cells: cells}},
		LegendTitle:  "Keterangan:",
		Legend:       []report.LegendItem{{Code: "T", Label: "Terlaksana"}},
		NotesTitle:   "Catatan:",
		Notes:        []string{"01/05 (P): lampu mati"},
		ImageWidthMM: 20,
	}

	out, err := NewRenderer().Render(doc)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRender_RejectsRaggedRows(t *testing.T) {
	doc := &report.Document{
		Columns: []report.Column{{Header: "A"}, {Header: "B"}},
		Rows:    []report.Row{{Cells: []report.Cell{report.Text("1")}}},
	}
	_, err := NewRenderer().Render(doc)
	assert.ErrorIs(t, err, report.ErrRenderFailed)
}

func TestLayout_RowHeightGrowsWithStackedLines(t *testing.T) {
	doc := &report.Document{Columns: []report.Column{{Header: "A", Width: 6}, {Header: "B", Width: 6}}}
	l := newLayout(doc)

	one := l.rowHeight([]report.Cell{report.Text("a"), report.Text("b")})
	three := l.rowHeight([]report.Cell{report.Stack("a", "b", "c"), report.Text("b")})

	assert.Greater(t, three, one)
}

func TestLayout_ImageHeightFollowsAspectRatio(t *testing.T) {
	doc := &report.Document{
		Columns:      []report.Column{{Header: "Foto", Width: 12}},
		ImageWidthMM: 30,
	}
	l := newLayout(doc)

	h := l.rowHeight([]report.Cell{{Image: &report.Image{Width: 300, Height: 400}}})

	assert.InDelta(t, 40+2*cellPadding, h, 0.001)
}
