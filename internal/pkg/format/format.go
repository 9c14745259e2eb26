// Package format renders numbers and dates the way the Indonesian reports print them.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.Indonesian)

var monthNames = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// MonthName returns the Indonesian month name for m (1-12), or "" when out of range.
func MonthName(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return monthNames[m-1]
}

// Integer formats d rounded to a whole number with Indonesian grouping.
func Integer(d decimal.Decimal) string {
	return printer.Sprintf("%d", d.Round(0).IntPart())
}

// Decimal formats d with the given number of fraction digits.
func Decimal(d decimal.Decimal, places int32) string {
	if places <= 0 {
		return Integer(d)
	}
	f, _ := d.Round(places).Float64()
	return printer.Sprint(number.Decimal(f, number.Scale(int(places))))
}

// Rupiah formats an amount of money, e.g. "Rp 1.234.567".
func Rupiah(d decimal.Decimal) string {
	return "Rp " + Integer(d)
}

// Liters formats a fuel volume with two fraction digits when it has any.
func Liters(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return Integer(d)
	}
	return Decimal(d, 2)
}

// Date formats t as dd/mm/yyyy in loc; zero times print "-".
func Date(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return "-"
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format("02/01/2006")
}

// DateTime formats t as dd/mm/yyyy hh:mm in loc.
func DateTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return "-"
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format("02/01/2006 15:04")
}

// LongDate formats t as "17 Mei 2024".
func LongDate(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return "-"
	}
	if loc != nil {
		t = t.In(loc)
	}
	return fmt.Sprintf("%d %s %d", t.Day(), MonthName(int(t.Month())), t.Year())
}

// Humanize turns an upper snake case enum value into title case words:
// "PERIKSA_FUNGSI_LAMPU" becomes "Periksa Fungsi Lampu".
func Humanize(s string) string {
	parts := strings.Split(strings.ToLower(s), "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// Fallback returns s, or "-" when s is blank.
func Fallback(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
