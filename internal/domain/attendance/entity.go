package attendance

import (
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/user"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/utils"
)

// Attendance is a clock-in record with a selfie and the device location.
type Attendance struct {
	ID        utils.ID         `json:"id"`
	User      *user.User       `json:"user,omitempty"`
	Spbu      *user.StationRef `json:"spbu,omitempty"`
	Photo     string           `json:"photo"`
	Latitude  *float64         `json:"latitude,omitempty"`
	Longitude *float64         `json:"longitude,omitempty"`
	CreatedAt utils.Time       `json:"createdAt"`
}

type AbsenceType string

const (
	AbsenceIzin  AbsenceType = "IZIN"
	AbsenceSakit AbsenceType = "SAKIT"
)

// Absence is a leave request (permission or sick leave) with an optional
// attachment photo.
type Absence struct {
	ID             utils.ID         `json:"id"`
	User           *user.User       `json:"user,omitempty"`
	Spbu           *user.StationRef `json:"spbu,omitempty"`
	JenisPengajuan AbsenceType      `json:"jenisPengajuan"`
	TanggalAwal    utils.Time       `json:"tanggalAwal"`
	TanggalAkhir   utils.Time       `json:"tanggalAkhir"`
	Alasan         string           `json:"alasan"`
	Lampiran       string           `json:"lampiran"`
	CreatedAt      utils.Time       `json:"createdAt"`
}

// UserName returns the employee name or "-".
func (a Attendance) UserName() string {
	if a.User == nil || a.User.Name == "" {
		return "-"
	}
	return a.User.Name
}

func (a Absence) UserName() string {
	if a.User == nil || a.User.Name == "" {
		return "-"
	}
	return a.User.Name
}
