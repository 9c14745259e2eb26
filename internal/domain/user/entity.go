package user

import "github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/utils"

type Role string

const (
	RoleAdminPusat Role = "ADMIN_PUSAT" // Head office, sees every station
	RoleSupervisor Role = "SUPERVISOR"  // Station supervisor
	RoleOperator   Role = "OPERATOR"    // Pump operator
	RoleOB         Role = "OB"          // Office boy, housekeeping checklists
	RoleSatpam     Role = "SATPAM"      // Security guard
)

// StationRef is the station a user belongs to, as embedded by the API.
type StationRef struct {
	ID       utils.ID `json:"id,omitempty"`
	CodeSpbu string   `json:"code_spbu"`
	Address  string   `json:"address,omitempty"`
}

type User struct {
	ID    utils.ID    `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email,omitempty"`
	Role  Role        `json:"role"`
	Spbu  *StationRef `json:"spbu,omitempty"`
}

// StationCode returns the code of the user's station, or "".
func (u User) StationCode() string {
	if u.Spbu == nil {
		return ""
	}
	return u.Spbu.CodeSpbu
}

func (r Role) IsValid() bool {
	_, ok := roleSections[r]
	return ok
}
