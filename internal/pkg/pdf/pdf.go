// Package pdf renders report documents as PDF with maroto.
package pdf

import (
	"fmt"
	"math"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/report"
)

const (
	margin       = 10.0
	a4ShortSide  = 210.0
	a4LongSide   = 297.0
	ptToMM       = 0.3528
	cellPadding  = 1.0
	defaultImage = 25.0
)

var (
	headerFill = &props.Color{Red: 220, Green: 220, Blue: 220}
	cellBorder = &props.Cell{BorderType: border.Full, BorderThickness: 0.1}
	headerCell = &props.Cell{BorderType: border.Full, BorderThickness: 0.1, BackgroundColor: headerFill}
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Format() report.Format {
	return report.FormatPDF
}

// layout holds the per-document geometry derived from the column weights.
type layout struct {
	sizes      []int
	grid       int
	pageWidth  float64
	fontSize   float64
	lineHeight float64
	imageWidth float64
}

func newLayout(doc *report.Document) layout {
	l := layout{pageWidth: a4ShortSide - 2*margin}
	if doc.Orientation == report.Landscape {
		l.pageWidth = a4LongSide - 2*margin
	}
	for _, c := range doc.Columns {
		s := int(math.Round(c.Width))
		if s < 1 {
			s = 1
		}
		l.sizes = append(l.sizes, s)
		l.grid += s
	}
	switch n := len(doc.Columns); {
	case n > 20:
		l.fontSize = 5
	case n > 8:
		l.fontSize = 7
	default:
		l.fontSize = 8
	}
	l.lineHeight = l.fontSize * ptToMM * 1.3
	l.imageWidth = doc.ImageWidthMM
	if l.imageWidth <= 0 {
		l.imageWidth = defaultImage
	}
	return l
}

func (l layout) colWidth(i int) float64 {
	return l.pageWidth * float64(l.sizes[i]) / float64(l.grid)
}

// wrapped estimates how many printed lines s needs in a column of width mm.
func (l layout) wrapped(s string, width float64) int {
	charWidth := l.fontSize * ptToMM * 0.5
	perLine := int((width - 2*cellPadding) / charWidth)
	if perLine < 1 {
		perLine = 1
	}
	n := (len([]rune(s)) + perLine - 1) / perLine
	if n < 1 {
		n = 1
	}
	return n
}

func (l layout) rowHeight(cells []report.Cell) float64 {
	h := l.lineHeight + 2*cellPadding
	for i, c := range cells {
		var ch float64
		if c.Image != nil {
			w := math.Min(l.imageWidth, l.colWidth(i)-2*cellPadding)
			ch = c.Image.HeightFor(w) + 2*cellPadding
		} else {
			lines := 0
			for _, s := range c.Lines {
				lines += l.wrapped(s, l.colWidth(i))
			}
			ch = float64(lines)*l.lineHeight + 2*cellPadding
		}
		if ch > h {
			h = ch
		}
	}
	return h
}

func alignOf(a report.Align) align.Type {
	switch a {
	case report.AlignCenter:
		return align.Center
	case report.AlignRight:
		return align.Right
	default:
		return align.Left
	}
}

func (l layout) cell(i int, c report.Cell, a report.Align, style *props.Cell, bold bool) core.Col {
	column := col.New(l.sizes[i]).WithStyle(style)
	if c.Image != nil {
		return column.Add(image.NewFromBytes(c.Image.Data, extension.Jpg, props.Rect{
			Center:  true,
			Percent: 95,
		}))
	}
	fs := fontstyle.Normal
	if bold || c.Bold {
		fs = fontstyle.Bold
	}
	top := cellPadding
	for _, s := range c.Lines {
		column.Add(text.New(s, props.Text{
			Top:   top,
			Left:  cellPadding,
			Right: cellPadding,
			Size:  l.fontSize,
			Style: fs,
			Align: alignOf(a),
		}))
		top += float64(l.wrapped(s, l.colWidth(i))) * l.lineHeight
	}
	return column
}

func (l layout) tableRow(doc *report.Document, cells []report.Cell, header bool) core.Row {
	style := cellBorder
	if header {
		style = headerCell
	}
	cols := make([]core.Col, len(cells))
	for i, c := range cells {
		a := doc.Columns[i].Align
		if header {
			a = report.AlignCenter
		}
		cols[i] = l.cell(i, c, a, style, header)
	}
	return row.New(l.rowHeight(cells)).Add(cols...)
}

// Render draws the title block, the table, the legend and the notes.
func (r *Renderer) Render(doc *report.Document) ([]byte, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	l := newLayout(doc)

	orient := orientation.Vertical
	if doc.Orientation == report.Landscape {
		orient = orientation.Horizontal
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orient).
		WithLeftMargin(margin).
		WithTopMargin(margin).
		WithRightMargin(margin).
		WithMaxGridSize(l.grid).
		Build()
	m := maroto.New(cfg)

	m.AddRow(10, text.NewCol(l.grid, doc.Title, props.Text{
		Size:  13,
		Style: fontstyle.Bold,
		Align: align.Center,
	}))
	for _, meta := range doc.Meta {
		m.AddRow(5, text.NewCol(l.grid, meta, props.Text{Size: 9}))
	}
	m.AddRow(3)

	headers := make([]report.Cell, len(doc.Columns))
	for i, c := range doc.Columns {
		headers[i] = report.Text(c.Header)
	}
	m.AddRows(l.tableRow(doc, headers, true))
	for _, rw := range doc.Rows {
		m.AddRows(l.tableRow(doc, rw.Cells, false))
	}

	if len(doc.Legend) > 0 {
		m.AddRow(4)
		m.AddRow(5, text.NewCol(l.grid, doc.LegendTitle, props.Text{Size: 9, Style: fontstyle.Bold}))
		for _, item := range doc.Legend {
			m.AddRow(4, text.NewCol(l.grid, item.Code+" = "+item.Label, props.Text{Size: 8}))
		}
	}
	if len(doc.Notes) > 0 {
		m.AddRow(4)
		m.AddRow(5, text.NewCol(l.grid, doc.NotesTitle, props.Text{Size: 9, Style: fontstyle.Bold}))
		for _, note := range doc.Notes {
			m.AddRow(4*float64(l.wrapped(note, l.pageWidth)), text.NewCol(l.grid, note, props.Text{Size: 8}))
		}
	}
	m.AddRow(4, line.NewCol(l.grid))

	document, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", report.ErrRenderFailed, err)
	}
	return document.GetBytes(), nil
}
