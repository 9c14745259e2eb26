package checklist

import (
	"time"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/shift"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/user"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/utils"
)

type Status string

const (
	StatusTerlaksana     Status = "TERLAKSANA"
	StatusBersih         Status = "BERSIH"
	StatusTidakBersih    Status = "TIDAK_BERSIH"
	StatusAdaKerusakan   Status = "ADA_KERUSAKAN"
	StatusBelumDilakukan Status = "BELUM_DILAKUKAN"
)

// Statuses is the legend order.
var Statuses = []Status{StatusTerlaksana, StatusBersih, StatusTidakBersih, StatusAdaKerusakan, StatusBelumDilakukan}

var statusAbbrevs = map[Status]string{
	StatusTerlaksana:     "T",
	StatusBersih:         "B",
	StatusTidakBersih:    "TB",
	StatusAdaKerusakan:   "AK",
	StatusBelumDilakukan: "BD",
}

// Abbrev is the code printed inside checklist grid cells. Unknown statuses
// print unchanged.
func (s Status) Abbrev() string {
	if a, ok := statusAbbrevs[s]; ok {
		return a
	}
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := statusAbbrevs[s]
	return ok
}

// Mark is the status recorded for one activity.
type Mark struct {
	Activity string `json:"activity"`
	Status   Status `json:"status"`
}

// Entry is a checklist record of any variant, reduced to the fields the
// grid report needs.
type Entry struct {
	ID      utils.ID    `json:"id"`
	Kind    Kind        `json:"kind"`
	Tanggal time.Time   `json:"tanggal"`
	Shift   shift.Shift `json:"shift"`
	Element string      `json:"element,omitempty"`
	Marks   []Mark      `json:"marks"`
	Remarks string      `json:"remarks,omitempty"`
	User    *user.User  `json:"user,omitempty"`
}

// Token renders one mark as it appears in a grid cell, e.g. "T (P)".
func Token(status Status, s shift.Shift) string {
	return status.Abbrev() + " (" + s.Abbrev() + ")"
}
