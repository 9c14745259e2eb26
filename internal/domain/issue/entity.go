package issue

import (
	"time"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/shift"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/user"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/utils"
)

// Report is an operator's problem report for a shift.
type Report struct {
	ID               utils.ID         `json:"id"`
	TanggalLaporan   utils.Time       `json:"tanggalLaporan"`
	Tanggal          utils.Time       `json:"tanggal"`
	Shift            shift.Shift      `json:"shift"`
	JudulLaporan     string           `json:"judulLaporan"`
	DeskripsiLaporan string           `json:"deskripsiLaporan"`
	Spbu             *user.StationRef `json:"spbu,omitempty"`
	User             *user.User       `json:"user,omitempty"`
	CreatedAt        utils.Time       `json:"createdAt"`
}

// Date is the report date: tanggalLaporan, then tanggal, then createdAt.
func (r Report) Date() time.Time {
	switch {
	case !r.TanggalLaporan.IsZero():
		return r.TanggalLaporan.Time
	case !r.Tanggal.IsZero():
		return r.Tanggal.Time
	default:
		return r.CreatedAt.Time
	}
}

func (r Report) UserName() string {
	if r.User == nil || r.User.Name == "" {
		return "-"
	}
	return r.User.Name
}

// Damage is an equipment damage report and its repair timeline. Any of the
// four timestamps may still be empty.
type Damage struct {
	ID                       utils.ID         `json:"id"`
	Spbu                     *user.StationRef `json:"spbu,omitempty"`
	NamaUnit                 string           `json:"namaUnit"`
	DeskripsiKerusakan       string           `json:"deskripsiKerusakan"`
	TindakanYangDilakukan    string           `json:"tindakanYangDilakukan"`
	PenanggungJawabPerbaikan string           `json:"penanggungJawabPerbaikan"`
	TanggalKerusakan         utils.Time       `json:"tanggalKerusakan"`
	TanggalPemberitahuan     utils.Time       `json:"tanggalPemberitahuan"`
	TanggalPerbaikan         utils.Time       `json:"tanggalPerbaikan"`
	TanggalPerbaikanSelesai  utils.Time       `json:"tanggalPerbaikanSelesai"`
	CreatedAt                utils.Time       `json:"createdAt"`
	UpdatedAt                utils.Time       `json:"updatedAt"`
}

// Resolved reports whether the repair has been completed.
func (d Damage) Resolved() bool {
	return !d.TanggalPerbaikanSelesai.IsZero()
}

// Date is the damage date, falling back to the record creation time.
func (d Damage) Date() time.Time {
	if !d.TanggalKerusakan.IsZero() {
		return d.TanggalKerusakan.Time
	}
	return d.CreatedAt.Time
}
