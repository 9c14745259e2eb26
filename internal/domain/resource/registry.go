package resource

import (
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/checklist"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/fuel"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/shift"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/user"
)

var shiftValues = func() []string {
	out := make([]string, len(shift.All))
	for i, s := range shift.All {
		out[i] = string(s)
	}
	return out
}()

var fuelTypeValues = func() []string {
	out := make([]string, len(fuel.FuelTypes))
	for i, f := range fuel.FuelTypes {
		out[i] = string(f)
	}
	return out
}()

var roleValues = []string{
	string(user.RoleAdminPusat),
	string(user.RoleSupervisor),
	string(user.RoleOperator),
	string(user.RoleOB),
	string(user.RoleSatpam),
}

var stockVolumes = []string{
	"volumePertalite", "volumePertamax", "volumePertamaxTurbo",
	"volumeBiosolar", "volumeDexLite", "volumePertaminaDex",
}

var definitions = []Definition{
	{
		Name:     "tanks",
		Title:    "Tangki",
		Section:  user.SectionSupervisor,
		Path:     "/supervisor/tanks",
		Fields:   []string{"code_tank", "fuel_type", "capacity", "current_volume"},
		Required: []string{"code_tank", "fuel_type", "capacity", "current_volume"},
		Numeric:  []string{"capacity", "current_volume"},
		Enums:    map[string][]string{"fuel_type": fuelTypeValues},
	},
	{
		Name:     "nozzles",
		Title:    "Nozzle",
		Section:  user.SectionSupervisor,
		Path:     "/supervisor/nozzles",
		Fields:   []string{"tankId", "pumpId", "kodeNozzle"},
		Required: []string{"tankId", "pumpId", "kodeNozzle"},
		Numeric:  []string{"tankId", "pumpId"},
	},
	{
		Name:     "pump-units",
		Title:    "Unit Pompa",
		Section:  user.SectionSupervisor,
		Path:     "/supervisor/pump-units",
		Fields:   []string{"kodePompa"},
		Required: []string{"kodePompa"},
	},
	{
		Name:     "fuel-qualities",
		Title:    "Kualitas BBM",
		Section:  user.SectionSupervisor,
		Path:     "/supervisor/fuel-qualities",
		Required: []string{"tankId", "tanggal"},
		Numeric: []string{
			"tankId", "densityObserved", "suhuObserved", "densityStd", "tinggiAirTangkiPendam",
			"densityStdPnbp", "densityObservedPenerimaan", "suhuObservedPenerimaan",
			"densityStdPenerimaan", "selisihDensity", "densityObservedPascaPenerimaan",
			"suhuObservedPascaPenerimaan", "densityStdPascaPenerimaan",
		},
		Dates: []string{"tanggal"},
	},
	{
		Name:     "tank-deliveries",
		Title:    "Penerimaan Tangki",
		Section:  user.SectionSupervisor,
		Path:     "/supervisor/tank-deliveries",
		Required: []string{"tankId", "deliveryDate", "shift", "noMobilTangki"},
		Numeric: []string{
			"tankId", "stockAwalShift", "volumePnbp", "volumeSebelumPenerimaan",
			"volumePenerimaanAktual", "pengeluaranTotalisatorNozzle",
			"stockAkhirPembukuan", "stockAkhirAktual",
		},
		Dates: []string{"deliveryDate"},
		Enums: map[string][]string{"shift": shiftValues},
		Derive: []Derivation{
			Difference("lebihKurangPenerimaan", "volumePenerimaanAktual", "volumePnbp"),
			Difference("lebihKurangOperasional", "stockAkhirAktual", "stockAkhirPembukuan"),
		},
	},
	{
		Name:     "stock-deliveries",
		Title:    "Pengiriman Stok",
		Section:  user.SectionSupervisor,
		Path:     "/supervisor/stock-deliveries",
		Fields:   stockVolumes,
		Numeric:  stockVolumes,
		Defaults: stockDefaults(),
	},
	{
		Name:     "equipment-damage-report",
		Title:    "Laporan Kerusakan Peralatan",
		Section:  user.SectionSupervisor,
		Path:     "/supervisor/equipment-damage-report",
		Required: []string{"namaUnit", "deskripsiKerusakan"},
		Dates:    []string{"tanggalKerusakan", "tanggalPemberitahuan", "tanggalPerbaikan", "tanggalPerbaikanSelesai"},
	},
	{
		Name:     "issue-report",
		Title:    "Laporan Kendala",
		Section:  user.SectionOperator,
		Path:     "/operator/issue-report",
		Encoding: Form,
		Fields:   []string{"tanggal", "shift", "judulLaporan", "deskripsiLaporan"},
		Required: []string{"shift", "judulLaporan", "deskripsiLaporan"},
		Dates:    []string{"tanggal"},
		Enums:    map[string][]string{"shift": shiftValues},
	},
	{
		Name:     "spbus",
		Title:    "SPBU",
		Section:  user.SectionAdmin,
		Path:     "/admin/spbus",
		ReadOnly: true,
	},
	{
		Name:                 "users",
		Title:                "Karyawan",
		Section:              user.SectionAdmin,
		Path:                 "/admin/users",
		Fields:               []string{"name", "email", "password", "role", "spbuId"},
		Required:             []string{"name", "email", "password", "role", "spbuId"},
		UpdateRequired:       []string{"name", "email"},
		Enums:                map[string][]string{"role": roleValues},
		LogoutOnUnauthorized: true,
	},
}

func stockDefaults() Record {
	r := Record{}
	for _, f := range stockVolumes {
		r[f] = zero()
	}
	return r
}

// checklistDefinitions exposes the raw checklist collections next to the
// typed checklist endpoints.
func checklistDefinitions() []Definition {
	var out []Definition
	for _, v := range checklist.Variants() {
		d := Definition{
			Name:     "checklist-" + string(v.Kind),
			Title:    v.Title,
			Section:  v.Section,
			Path:     v.Path,
			Encoding: Form,
			Required: []string{"tanggal", "shift"},
			Dates:    []string{"tanggal"},
			Enums:    map[string][]string{"shift": shiftValues},
		}
		if !v.StatusFields {
			d.Required = append(d.Required, v.ActivityField, v.StatusField)
		}
		if v.ElementField != "" {
			d.Required = append(d.Required, v.ElementField)
		}
		out = append(out, d)
	}
	return out
}

var registry = append(append([]Definition{}, definitions...), checklistDefinitions()...)

// Lookup returns the definition named name inside section.
func Lookup(section user.Section, name string) (Definition, error) {
	for _, d := range registry {
		if d.Section == section && d.Name == name {
			return d, nil
		}
	}
	return Definition{}, ErrNotFound
}

// InSection lists the definitions served under a route group.
func InSection(section user.Section) []Definition {
	var out []Definition
	for _, d := range registry {
		if d.Section == section {
			out = append(out, d)
		}
	}
	return out
}
