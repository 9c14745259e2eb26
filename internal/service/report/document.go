package report

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/delivery"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/fuel"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/fuelsale"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/issue"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/report"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/format"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/numeric"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/period"
)

// Header carries what every document prints above its table.
type Header struct {
	StationCode string
	Window      period.Window
	GeneratedAt time.Time
	Location    *time.Location
}

func (h Header) meta() []string {
	lines := []string{"Tanggal Cetak: " + format.Date(h.GeneratedAt, h.Location)}
	if h.StationCode != "" {
		lines = append(lines, "SPBU: "+h.StationCode)
	}
	if p := h.periodLabel(); p != "" {
		lines = append(lines, "Periode: "+p)
	}
	return lines
}

func (h Header) periodLabel() string {
	switch {
	case h.Window.HasMonth():
		return format.MonthName(h.Window.Month) + " " + strconv.Itoa(h.Window.Year)
	case h.Window.Year > 0:
		return strconv.Itoa(h.Window.Year)
	}
	return ""
}

// filename appends the period to base, e.g. "Laporan_Fuel_Sales_Mei_2024".
func (h Header) filename(base string) string {
	if p := h.periodLabel(); p != "" {
		return base + "_" + safeName(p)
	}
	return base
}

// safeName keeps letters, digits, dot, dash and underscore; spaces become
// underscores and everything else a dash.
func safeName(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '-' || r == '_' {
			return r
		}
		if r == ' ' {
			return '_'
		}
		return '-'
	}, strings.TrimSpace(s))
}

// FuelSalesDocument is the sales ledger with a closing total row.
func FuelSalesDocument(sales []fuelsale.FuelSale, h Header) *report.Document {
	doc := &report.Document{
		Title:       "Laporan Penjualan BBM (Fuel Sales)",
		Meta:        h.meta(),
		Orientation: report.Landscape,
		Columns: []report.Column{
			{Header: "Nozzle", Width: 3},
			{Header: "Tanggal", Width: 3},
			{Header: "Shift", Width: 1.5},
			{Header: "Stand Awal", Width: 2, Align: report.AlignRight},
			{Header: "Stand Akhir", Width: 2, Align: report.AlignRight},
			{Header: "Liter", Width: 2, Align: report.AlignRight},
			{Header: "Harga/Liter", Width: 2, Align: report.AlignRight},
			{Header: "Total Harga", Width: 2.5, Align: report.AlignRight},
		},
		Filename:    h.filename("Laporan_Fuel_Sales"),
		GeneratedAt: h.GeneratedAt,
	}

	var liters, total []decimal.Decimal
	for _, s := range sales {
		doc.Rows = append(doc.Rows, report.Row{Cells: []report.Cell{
			report.Text(s.NozzleLabel()),
			report.Text(format.DateTime(s.Tanggal.Time, h.Location)),
			report.Text(s.Shift.Label()),
			report.Text(format.Liters(s.StandAwal)),
			report.Text(format.Liters(s.StandAkhir)),
			report.Text(format.Liters(s.JumlahLiter)),
			report.Text(format.Rupiah(s.HargaPerLiter)),
			report.Text(format.Rupiah(s.TotalHarga)),
		}})
		liters = append(liters, s.JumlahLiter)
		total = append(total, s.TotalHarga)
	}

	doc.Rows = append(doc.Rows, report.Row{Cells: []report.Cell{
		{Lines: []string{"Total"}, Bold: true},
		{}, {}, {}, {},
		{Lines: []string{format.Liters(numeric.Sum(liters...))}, Bold: true},
		{},
		{Lines: []string{format.Rupiah(numeric.Sum(total...))}, Bold: true},
	}})
	return doc
}

// StockDeliveriesDocument lists delivered volumes per product.
func StockDeliveriesDocument(deliveries []delivery.StockDelivery, h Header) *report.Document {
	cols := []report.Column{{Header: "ID", Width: 1}}
	for _, f := range delivery.StockFields {
		cols = append(cols, report.Column{Header: f.Label, Width: 2, Align: report.AlignRight})
	}
	cols = append(cols, report.Column{Header: "Dibuat", Width: 3})

	doc := &report.Document{
		Title:       "Laporan Stock Deliveries",
		Meta:        h.meta(),
		Orientation: report.Landscape,
		Columns:     cols,
		Filename:    h.filename("Laporan_Stock_Deliveries"),
		GeneratedAt: h.GeneratedAt,
	}
	for _, d := range deliveries {
		cells := []report.Cell{report.Text(d.ID.String())}
		for _, f := range delivery.StockFields {
			cells = append(cells, report.Text(format.Liters(d.Volume(f.Field))))
		}
		cells = append(cells, report.Text(format.DateTime(d.CreatedAt.Time, h.Location)))
		doc.Rows = append(doc.Rows, report.Row{Cells: cells})
	}
	return doc
}

// PumpUnitsDocument stacks each unit's nozzles one per line.
func PumpUnitsDocument(units []fuel.PumpUnit, h Header) *report.Document {
	doc := &report.Document{
		Title:       "Daftar Pump Units",
		Meta:        h.meta(),
		Orientation: report.Portrait,
		Columns: []report.Column{
			{Header: "ID", Width: 1},
			{Header: "Kode Pompa", Width: 2},
			{Header: "Nozzle", Width: 4},
			{Header: "Dibuat", Width: 3},
		},
		Filename:    h.filename("Daftar_Pump_Units"),
		GeneratedAt: h.GeneratedAt,
	}
	for _, u := range units {
		nozzles := report.Text("-")
		if len(u.Nozzles) > 0 {
			lines := make([]string, 0, len(u.Nozzles))
			for _, n := range u.Nozzles {
				ft := string(n.FuelType())
				if ft == "" {
					ft = "-"
				}
				lines = append(lines, n.KodeNozzle+" ("+ft+")")
			}
			nozzles = report.Stack(lines...)
		}
		doc.Rows = append(doc.Rows, report.Row{Cells: []report.Cell{
			report.Text(u.ID.String()),
			report.Text(u.KodePompa),
			nozzles,
			report.Text(format.DateTime(u.CreatedAt.Time, h.Location)),
		}})
	}
	return doc
}

// IssueReportsDocument is the operator problem log. The station code falls
// back to the one embedded in the first report.
func IssueReportsDocument(reports []issue.Report, h Header) *report.Document {
	if h.StationCode == "" && len(reports) > 0 && reports[0].Spbu != nil {
		h.StationCode = reports[0].Spbu.CodeSpbu
	}
	code := h.StationCode
	if code == "" {
		code = "NA"
	}

	doc := &report.Document{
		Title:       "Laporan Masalah (Issue Report)",
		Meta:        h.meta(),
		Orientation: report.Portrait,
		Columns: []report.Column{
			{Header: "ID", Width: 1},
			{Header: "Tanggal", Width: 3},
			{Header: "Shift", Width: 1.5},
			{Header: "User", Width: 2.5},
			{Header: "Judul Laporan", Width: 4},
			{Header: "Deskripsi", Width: 6},
		},
		Filename:    h.filename("Laporan_Masalah_" + safeName(code)),
		GeneratedAt: h.GeneratedAt,
	}
	for _, r := range reports {
		doc.Rows = append(doc.Rows, report.Row{Cells: []report.Cell{
			report.Text(r.ID.String()),
			report.Text(format.DateTime(r.Date(), h.Location)),
			report.Text(r.Shift.Label()),
			report.Text(r.UserName()),
			report.Text(r.JudulLaporan),
			report.Text(r.DeskripsiLaporan),
		}})
	}
	return doc
}

// DamageReportsDocument prints the repair timeline of every damage report.
func DamageReportsDocument(damages []issue.Damage, h Header) *report.Document {
	doc := &report.Document{
		Title:       "Laporan Kerusakan Peralatan",
		Meta:        h.meta(),
		Orientation: report.Landscape,
		Columns: []report.Column{
			{Header: "Unit", Width: 2.5},
			{Header: "Deskripsi Kerusakan", Width: 4},
			{Header: "Tindakan", Width: 3.5},
			{Header: "Penanggung Jawab", Width: 2.5},
			{Header: "Tgl Kerusakan", Width: 2},
			{Header: "Tgl Pemberitahuan", Width: 2},
			{Header: "Tgl Perbaikan", Width: 2},
			{Header: "Tgl Selesai", Width: 2},
		},
		Filename:    h.filename("Laporan_Kerusakan_Peralatan"),
		GeneratedAt: h.GeneratedAt,
	}
	for _, d := range damages {
		doc.Rows = append(doc.Rows, report.Row{Cells: []report.Cell{
			report.Text(format.Fallback(d.NamaUnit)),
			report.Text(format.Fallback(d.DeskripsiKerusakan)),
			report.Text(format.Fallback(d.TindakanYangDilakukan)),
			report.Text(format.Fallback(d.PenanggungJawabPerbaikan)),
			report.Text(format.Date(d.TanggalKerusakan.Time, h.Location)),
			report.Text(format.Date(d.TanggalPemberitahuan.Time, h.Location)),
			report.Text(format.Date(d.TanggalPerbaikan.Time, h.Location)),
			report.Text(format.Date(d.TanggalPerbaikanSelesai.Time, h.Location)),
		}})
	}
	return doc
}

// StationSummaryDocument is the admin overview of every station.
func StationSummaryDocument(stations []fuel.Station, h Header) *report.Document {
	doc := &report.Document{
		Title:       "Daftar Ringkasan Semua SPBU",
		Meta:        []string{"Dicetak pada: " + format.DateTime(h.GeneratedAt, h.Location)},
		Orientation: report.Portrait,
		Columns: []report.Column{
			{Header: "Kode SPBU", Width: 2},
			{Header: "Alamat", Width: 5},
			{Header: "Jml Karyawan", Width: 1.5, Align: report.AlignCenter},
			{Header: "Jml Tangki", Width: 1.5, Align: report.AlignCenter},
		},
		Filename:    "Laporan_Ringkasan_SPBU",
		GeneratedAt: h.GeneratedAt,
	}
	for _, s := range stations {
		doc.Rows = append(doc.Rows, report.Row{Cells: []report.Cell{
			report.Text(s.CodeSpbu),
			report.Text(format.Fallback(s.Address)),
			report.Text(strconv.Itoa(len(s.Users))),
			report.Text(strconv.Itoa(len(s.Tanks))),
		}})
	}
	return doc
}
