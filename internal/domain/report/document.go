package report

import (
	"fmt"
	"strings"
	"time"
)

type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Column is a table column. Width is a relative weight; renderers scale the
// weights to the printable width.
type Column struct {
	Header string
	Width  float64
	Align  Align
}

// Image is an embedded picture, already re-encoded as JPEG.
type Image struct {
	Data   []byte
	Width  int
	Height int
}

// HeightFor returns the height an image drawn widthMM wide must get to keep
// its native aspect ratio.
func (i Image) HeightFor(widthMM float64) float64 {
	if i.Width <= 0 || i.Height <= 0 {
		return widthMM
	}
	return widthMM * float64(i.Height) / float64(i.Width)
}

// Cell holds stacked text lines or a single image. Lines are drawn one
// below the other in order.
type Cell struct {
	Lines []string
	Image *Image
	Bold  bool
}

// Text builds a single-line cell.
func Text(s string) Cell {
	return Cell{Lines: []string{s}}
}

// Stack builds a multi-line cell.
func Stack(lines ...string) Cell {
	return Cell{Lines: lines}
}

func (c Cell) String() string {
	return strings.Join(c.Lines, "\n")
}

func (c Cell) IsEmpty() bool {
	return c.Image == nil && len(c.Lines) == 0
}

type Row struct {
	Cells []Cell
}

// LegendItem explains one abbreviation used in the table body.
type LegendItem struct {
	Code  string
	Label string
}

// Document is a renderer-independent report: header lines, a table and the
// blocks printed below it.
type Document struct {
	Title       string
	Meta        []string
	Orientation Orientation
	Columns     []Column
	Rows        []Row
	LegendTitle string
	Legend      []LegendItem
	NotesTitle  string
	Notes       []string
	// ImageWidthMM is the drawn width of image cells.
	ImageWidthMM float64
	Filename     string
	GeneratedAt  time.Time
}

// Validate checks that every row has one cell per column.
func (d *Document) Validate() error {
	if len(d.Columns) == 0 {
		return fmt.Errorf("%w: document has no columns", ErrRenderFailed)
	}
	for i, r := range d.Rows {
		if len(r.Cells) != len(d.Columns) {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrRenderFailed, i, len(r.Cells), len(d.Columns))
		}
	}
	return nil
}

// Lines returns the tallest stack of text lines in the row.
func (r Row) Lines() int {
	n := 1
	for _, c := range r.Cells {
		if len(c.Lines) > n {
			n = len(c.Lines)
		}
	}
	return n
}

// Image returns the first image in the row, or nil.
func (r Row) Image() *Image {
	for _, c := range r.Cells {
		if c.Image != nil {
			return c.Image
		}
	}
	return nil
}

// Renderer turns a document into file bytes.
type Renderer interface {
	Render(doc *Document) ([]byte, error)
	Format() Format
}
