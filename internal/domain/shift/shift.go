package shift

import "strings"

// Shift is one of the three daily work shifts.
type Shift string

const (
	Pagi  Shift = "PAGI"
	Siang Shift = "SIANG"
	Malam Shift = "MALAM"
)

var All = []Shift{Pagi, Siang, Malam}

func (s Shift) IsValid() bool {
	switch s {
	case Pagi, Siang, Malam:
		return true
	}
	return false
}

// Abbrev is the single-letter code printed in checklist grids.
func (s Shift) Abbrev() string {
	switch s {
	case Pagi:
		return "P"
	case Siang:
		return "S"
	case Malam:
		return "M"
	}
	return strings.TrimSpace(string(s))
}

// Label is the human readable shift name.
func (s Shift) Label() string {
	switch s {
	case Pagi:
		return "Pagi"
	case Siang:
		return "Siang"
	case Malam:
		return "Malam"
	}
	return string(s)
}
