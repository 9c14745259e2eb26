package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/period"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/validator"
)

type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// ParseFormat defaults to PDF.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatPDF:
		return FormatPDF, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/pdf"
}

// Kind names a tabular report.
type Kind string

const (
	KindFuelSales       Kind = "fuel-sales"
	KindIssueReports    Kind = "issue-reports"
	KindPumpUnits       Kind = "pump-units"
	KindStockDeliveries Kind = "stock-deliveries"
	KindDamageReports   Kind = "equipment-damage"
	KindStationSummary  Kind = "spbu-summary"
	KindAttendances     Kind = "attendances"
	KindAbsences        Kind = "absences"
	KindChecklist       Kind = "checklist"
)

// ExportRequest selects the records and output of one export.
type ExportRequest struct {
	Kind        Kind
	Format      Format
	Window      period.Window
	StationCode string
}

// Validate checks the optional period fields the way the monthly reports do.
func (r *ExportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Window.Month != 0 && (r.Window.Month < 1 || r.Window.Month > 12) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Window.Year != 0 && (r.Window.Year < 2020 || r.Window.Year > currentYear+1) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// File is a rendered export ready to be streamed.
type File struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
	RowCount    int    `json:"row_count"`
}
