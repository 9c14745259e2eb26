package report

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/checklist"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/report"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/shift"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/format"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/period"
)

// GridDays is the fixed number of day columns of a checklist grid.
const GridDays = 31

// ChecklistGrid lays out one month of checklist entries as a calendar grid:
// one row per known activity, one column per day. A cell lists the
// "STATUS (SHIFT)" token of every entry recorded on that day for the row's
// activity, in the order the entries were given.
func ChecklistGrid(v checklist.Variant, entries []checklist.Entry, h Header) (*report.Document, error) {
	if !h.Window.HasMonth() {
		return nil, report.ErrPeriodRequired
	}
	loc := h.Location
	if loc == nil {
		loc = time.UTC
	}

	entries = period.Filter(entries, h.Window, loc, func(e checklist.Entry) time.Time { return e.Tanggal })
	if len(entries) == 0 {
		return nil, report.ErrNoRecordsInPeriod
	}

	code := h.StationCode
	if code == "" {
		for _, e := range entries {
			if e.User != nil && e.User.StationCode() != "" {
				code = e.User.StationCode()
				break
			}
		}
	}
	if code == "" {
		code = "NA"
	}

	doc := &report.Document{
		Title: v.Title,
		Meta: []string{
			"No. SPBU: " + code,
			"Bulan: " + strings.ToUpper(format.MonthName(h.Window.Month)) + " " + strconv.Itoa(h.Window.Year),
		},
		Orientation: report.Landscape,
		Columns:     gridColumns(v),
		LegendTitle: "Keterangan:",
		Legend:      gridLegend(),
		Filename:    v.FilePrefix + "_" + safeName(code) + "_" + format.MonthName(h.Window.Month) + "_" + strconv.Itoa(h.Window.Year),
		GeneratedAt: h.GeneratedAt,
	}

	// tokens[activity][day-1]
	tokens := make(map[string][][]string, len(v.Activities))
	for _, a := range v.Activities {
		tokens[a.Code] = make([][]string, GridDays)
	}
	for _, e := range entries {
		day := e.Tanggal.In(loc).Day()
		for _, m := range e.Marks {
			days, ok := tokens[m.Activity]
			if !ok {
				continue
			}
			days[day-1] = append(days[day-1], checklist.Token(m.Status, e.Shift))
		}
	}

	prevElement := ""
	for i, a := range v.Activities {
		cells := make([]report.Cell, 0, len(doc.Columns))
		if v.HasElements() {
			var el report.Cell
			if i == 0 || a.Element != prevElement {
				el = report.Cell{Lines: []string{a.Element}, Bold: true}
			}
			prevElement = a.Element
			cells = append(cells, el)
		}
		cells = append(cells, report.Text(activityLabel(a.Code)))
		for _, day := range tokens[a.Code] {
			if len(day) == 0 {
				cells = append(cells, report.Cell{})
				continue
			}
			cells = append(cells, report.Stack(day...))
		}
		cells = append(cells, report.Cell{})
		doc.Rows = append(doc.Rows, report.Row{Cells: cells})
	}

	if v.RemarksField != "" {
		for _, e := range entries {
			if e.Remarks == "" {
				continue
			}
			doc.Notes = append(doc.Notes, format.Date(e.Tanggal, loc)+" ("+e.Shift.Abbrev()+"): "+e.Remarks)
		}
		if len(doc.Notes) > 0 {
			doc.NotesTitle = "Catatan:"
		}
	}
	return doc, nil
}

func gridColumns(v checklist.Variant) []report.Column {
	var cols []report.Column
	if v.HasElements() {
		cols = append(cols, report.Column{Header: "Elemen", Width: 12})
	}
	cols = append(cols, report.Column{Header: "Aktivitas", Width: 30})
	for d := 1; d <= GridDays; d++ {
		cols = append(cols, report.Column{Header: strconv.Itoa(d), Width: 5, Align: report.AlignCenter})
	}
	return append(cols, report.Column{Header: "Paraf", Width: 8})
}

func gridLegend() []report.LegendItem {
	items := make([]report.LegendItem, 0, len(checklist.Statuses)+len(shift.All))
	for _, s := range checklist.Statuses {
		items = append(items, report.LegendItem{Code: s.Abbrev(), Label: format.Humanize(string(s))})
	}
	for _, s := range shift.All {
		items = append(items, report.LegendItem{Code: s.Abbrev(), Label: "Shift " + s.Label()})
	}
	return items
}

// activityLabel turns SNAKE_CASE and camelCase codes into words.
func activityLabel(code string) string {
	if strings.Contains(code, "_") || code == strings.ToUpper(code) {
		return format.Humanize(code)
	}
	var b strings.Builder
	for i, r := range code {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		if i == 0 {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
