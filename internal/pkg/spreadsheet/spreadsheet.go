// Package spreadsheet renders report documents as XLSX workbooks.
package spreadsheet

import (
	"fmt"
	"math"
	"strings"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

const (
	sheetName      = "Laporan"
	pointsPerLine  = 13.0
	mmToPoints     = 72 / 25.4
	mmToPixels     = 96 / 25.4
	charsPerWeight = 4.0
	defaultImageMM = 25.0
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Format() report.Format {
	return report.FormatXLSX
}

type styles struct {
	title, meta, header, body, bold int
	aligned                         map[report.Align]int
}

var thinBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
}

func horizontal(a report.Align) string {
	switch a {
	case report.AlignCenter:
		return "center"
	case report.AlignRight:
		return "right"
	default:
		return "left"
	}
}

func newStyles(f *excelize.File) (styles, error) {
	var (
		s   styles
		err error
	)
	if s.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}); err != nil {
		return s, err
	}
	if s.meta, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Size: 10}}); err != nil {
		return s, err
	}
	if s.bold, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 10}}); err != nil {
		return s, err
	}
	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Border:    thinBorder,
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"DCDCDC"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	}); err != nil {
		return s, err
	}
	s.aligned = map[report.Align]int{}
	for _, a := range []report.Align{report.AlignLeft, report.AlignCenter, report.AlignRight} {
		id, err := f.NewStyle(&excelize.Style{
			Border:    thinBorder,
			Alignment: &excelize.Alignment{Horizontal: horizontal(a), Vertical: "top", WrapText: true},
		})
		if err != nil {
			return s, err
		}
		s.aligned[a] = id
	}
	s.body = s.aligned[report.AlignLeft]
	return s, nil
}

// Render writes the document to a single sheet: title and meta lines, the
// table with borders, then the legend and notes.
func (r *Renderer) Render(doc *report.Document) ([]byte, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("%w: %v", report.ErrRenderFailed, err)
	}
	st, err := newStyles(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", report.ErrRenderFailed, err)
	}

	w := &writer{f: f, st: st, doc: doc, row: 1}
	if err := w.write(); err != nil {
		return nil, fmt.Errorf("%w: %v", report.ErrRenderFailed, err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", report.ErrRenderFailed, err)
	}
	return buf.Bytes(), nil
}

type writer struct {
	f   *excelize.File
	st  styles
	doc *report.Document
	row int
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func (w *writer) write() error {
	cols := len(w.doc.Columns)
	last := cellName(cols, 1)

	// Title spans the whole table.
	if err := w.f.SetCellValue(sheetName, "A1", w.doc.Title); err != nil {
		return err
	}
	if err := w.f.MergeCell(sheetName, "A1", last); err != nil {
		return err
	}
	if err := w.f.SetCellStyle(sheetName, "A1", last, w.st.title); err != nil {
		return err
	}
	w.row++

	for _, meta := range w.doc.Meta {
		if err := w.line(meta, w.st.meta); err != nil {
			return err
		}
	}
	w.row++

	for i, c := range w.doc.Columns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		width := math.Max(c.Width*charsPerWeight, 6)
		if err := w.f.SetColWidth(sheetName, name, name, width); err != nil {
			return err
		}
		if err := w.f.SetCellValue(sheetName, cellName(i+1, w.row), c.Header); err != nil {
			return err
		}
	}
	if err := w.f.SetCellStyle(sheetName, cellName(1, w.row), cellName(cols, w.row), w.st.header); err != nil {
		return err
	}
	w.row++

	for _, rw := range w.doc.Rows {
		if err := w.tableRow(rw); err != nil {
			return err
		}
	}

	if len(w.doc.Legend) > 0 {
		w.row++
		if err := w.line(w.doc.LegendTitle, w.st.bold); err != nil {
			return err
		}
		for _, item := range w.doc.Legend {
			if err := w.line(item.Code+" = "+item.Label, w.st.meta); err != nil {
				return err
			}
		}
	}
	if len(w.doc.Notes) > 0 {
		w.row++
		if err := w.line(w.doc.NotesTitle, w.st.bold); err != nil {
			return err
		}
		for _, note := range w.doc.Notes {
			if err := w.line(note, w.st.meta); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *writer) line(s string, style int) error {
	cell := cellName(1, w.row)
	if err := w.f.SetCellValue(sheetName, cell, s); err != nil {
		return err
	}
	if err := w.f.SetCellStyle(sheetName, cell, cell, style); err != nil {
		return err
	}
	w.row++
	return nil
}

func (w *writer) tableRow(rw report.Row) error {
	height := float64(rw.Lines()) * pointsPerLine
	imageMM := w.doc.ImageWidthMM
	if imageMM <= 0 {
		imageMM = defaultImageMM
	}

	for i, c := range rw.Cells {
		cell := cellName(i+1, w.row)
		style := w.st.aligned[w.doc.Columns[i].Align]
		if style == 0 {
			style = w.st.body
		}
		if err := w.f.SetCellStyle(sheetName, cell, cell, style); err != nil {
			return err
		}
		if c.Image != nil {
			scale := imageMM * mmToPixels / float64(c.Image.Width)
			if err := w.f.AddPictureFromBytes(sheetName, cell, &excelize.Picture{
				Extension: ".jpg",
				File:      c.Image.Data,
				Format: &excelize.GraphicOptions{
					ScaleX:  scale,
					ScaleY:  scale,
					OffsetX: 2,
					OffsetY: 2,
				},
			}); err != nil {
				return err
			}
			if h := c.Image.HeightFor(imageMM)*mmToPoints + 4; h > height {
				height = h
			}
			continue
		}
		if len(c.Lines) == 0 {
			continue
		}
		if err := w.f.SetCellValue(sheetName, cell, strings.Join(c.Lines, "\n")); err != nil {
			return err
		}
	}
	if err := w.f.SetRowHeight(sheetName, w.row, height); err != nil {
		return err
	}
	w.row++
	return nil
}
