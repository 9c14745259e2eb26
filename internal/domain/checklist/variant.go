package checklist

import (
	"strings"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/user"
)

type Kind string

const (
	KindMushola   Kind = "mushola"
	KindToilet    Kind = "toilet"
	KindOffice    Kind = "office"
	KindGarden    Kind = "garden"
	KindDriveway  Kind = "driveway"
	KindAwalShift Kind = "awal-shift"
)

// Activity is one row of a checklist grid. Element groups driveway rows.
type Activity struct {
	Code    string `json:"code"`
	Element string `json:"element,omitempty"`
}

// Label is the code with underscores shown as spaces.
func (a Activity) Label() string {
	return strings.ReplaceAll(a.Code, "_", " ")
}

// Variant describes one checklist type: where its records live upstream,
// how a record names its activity and status, and the fixed list of
// activities that make up the rows of its monthly grid.
type Variant struct {
	Kind          Kind
	Title         string
	FilePrefix    string
	Section       user.Section
	Path          string
	ActivityField string
	ElementField  string
	StatusField   string
	RemarksField  string
	// StatusFields marks variants whose record carries one status field per
	// activity instead of a single activity/status pair.
	StatusFields bool
	Elements     []string
	Activities   []Activity
	Statuses     []Status
}

// HasElements reports whether the grid carries a leading element column.
func (v Variant) HasElements() bool {
	return len(v.Elements) > 0
}

// Activity looks up an activity by code.
func (v Variant) Activity(code string) (Activity, bool) {
	for _, a := range v.Activities {
		if a.Code == code {
			return a, true
		}
	}
	return Activity{}, false
}

func (v Variant) allowsStatus(s Status) bool {
	for _, allowed := range v.Statuses {
		if allowed == s {
			return true
		}
	}
	return false
}

func (v Variant) hasElement(e string) bool {
	for _, el := range v.Elements {
		if el == e {
			return true
		}
	}
	return false
}

var cleaningStatuses = []Status{StatusTerlaksana, StatusBersih, StatusTidakBersih, StatusAdaKerusakan}

func plain(codes ...string) []Activity {
	out := make([]Activity, len(codes))
	for i, c := range codes {
		out[i] = Activity{Code: c}
	}
	return out
}

func grouped(element string, codes ...string) []Activity {
	out := plain(codes...)
	for i := range out {
		out[i].Element = element
	}
	return out
}

func concat(groups ...[]Activity) []Activity {
	var out []Activity
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

var variants = []Variant{
	{
		Kind:          KindMushola,
		Title:         "CHECKLIST KEBERSIHAN MUSHOLA",
		FilePrefix:    "Checklist_Mushola",
		Section:       user.SectionOB,
		Path:          "/ob/checklist-mushola",
		ActivityField: "aktifitasMushola",
		StatusField:   "checklistStatus",
		Statuses:      cleaningStatuses,
		Activities: plain(
			"PERIKSA_KEBERSIHAN_DAN_KERUSAKAN_SECARA_VISUAL",
			"PERIKSA_FUNGSI_AC_PINTU_LAMPU_DAN_JENDELA",
			"SEMROTKAN_PENGISI_RUANGAN",
			"SAPU_LANTAI_DAERAH_MUSHOLA",
			"SAPU_DAN_LAP_DAERAH_PENYIMPANAN_SEPATU",
			"BERSIHKAN_JENDELA",
			"BERSIHKAN_PINTU",
			"BERSIHKAN_DINDING",
			"GANTI_DAN_CUCI_KESET_PINTU",
			"CUCI_SAJADAH",
		),
	},
	{
		Kind:          KindToilet,
		Title:         "CHECKLIST KEBERSIHAN TOILET",
		FilePrefix:    "Checklist_Toilet",
		Section:       user.SectionOB,
		Path:          "/ob/checklist-toilet",
		ActivityField: "aktifitasToilet",
		StatusField:   "checklistStatus",
		Statuses:      cleaningStatuses,
		Activities: plain(
			"PERIKSA_KEBERSIHAN_DAN_KERUSAKAN_SECARA_VISUAL",
			"PERIKSA_FUNGSI_TOILET_KERAN_PINTU_LAMPU_DAN_JENDELA",
			"BERSIHKAN_TOILET_WASTAFEL_CERMIN",
			"SEMPROTKAN_PENGISI_RUANGAN",
			"SAPU_DAN_LAP_DAERAH_KAMAR_KECIL",
			"KURAS_BAK_AIR",
			"BERSIHKAN_JENDELA_DAN_PINTU",
			"GANTI_DAN_CUCI_KESET_PINTU",
		),
	},
	{
		Kind:          KindOffice,
		Title:         "CHECKLIST KEBERSIHAN KANTOR",
		FilePrefix:    "Checklist_Kantor",
		Section:       user.SectionOB,
		Path:          "/ob/checklist-office",
		ActivityField: "aktifitasOffice",
		StatusField:   "checklistStatus",
		Statuses:      cleaningStatuses,
		Activities: plain(
			"PERIKSA_KEBERSIHAN_DAN_KERUSAKAN_SECARA_VISUAL",
			"SAPU_LANTAI",
			"PEL_LANTAI",
			"LAP_JENDELA_KUSEN_DAN_LIPSLANK",
			"LAP_PERABOTAN_KANTOR",
			"BERSIHKAN_TEMPAT_SAMPAH",
			"GANTI_DAN_CUCI_KESET_PINTU",
		),
	},
	{
		Kind:          KindGarden,
		Title:         "CHECKLIST PERAWATAN TAMAN",
		FilePrefix:    "Checklist_Taman",
		Section:       user.SectionOB,
		Path:          "/ob/checklist-garden",
		ActivityField: "aktifitasGarden",
		StatusField:   "checklistStatus",
		Statuses:      cleaningStatuses,
		Activities:    plain("SAPU_TAMAN", "SIRAM_TAMAN", "CHECK_FUNGSI_LAMPU"),
	},
	{
		Kind:          KindDriveway,
		Title:         "CHECKLIST KEBERSIHAN DRIVEWAY",
		FilePrefix:    "Checklist_Driveway",
		Section:       user.SectionOperator,
		Path:          "/operator/checklist-driveway",
		ActivityField: "aktifitasDriveway",
		ElementField:  "elemen",
		StatusField:   "checklistStatus",
		Statuses:      cleaningStatuses,
		Elements:      []string{"DRIVEWAY", "PULAU", "KANOPI", "SIGNAGE", "OIL"},
		Activities: concat(
			grouped("DRIVEWAY",
				"PERIKSA_KERUSAKAN_SECARA_VISUAL",
				"SAPU_DAERAH_DRIVEWAY_DAN_SEKITARNYA",
				"CUCI_DRIVEWAY_DENGAN_SIKAT_DAN_DETERGEN",
			),
			grouped("PULAU", "CUCI_PULAU_DENGAN_SIKAT_DAN_DETERGEN"),
			grouped("KANOPI", "PEMERIKSAAN_VISUAL_KESULITAN_DAN_KEBERSIHAN", "PERIKSA_FUNGSI_LAMPU"),
			grouped("SIGNAGE", "PERIKSA_LAMPU"),
			grouped("OIL", "PERIKSA_KEDALAMAN_DAN_KEBERSIHAN", "KURAS"),
		),
	},
	{
		Kind:         KindAwalShift,
		Title:        "CHECKLIST KEBERSIHAN DAN PERAWATAN DI AWAL SHIFT",
		FilePrefix:   "Checklist_Awal_Shift",
		Section:      user.SectionOperator,
		Path:         "/operator/checklist-shift",
		RemarksField: "keterangan",
		StatusFields: true,
		Statuses:     []Status{StatusTerlaksana, StatusBelumDilakukan, StatusAdaKerusakan},
		Activities: plain(
			"perawatanNozzle",
			"perawatanBadanDispenser",
			"perawatanDisplay",
			"perawatanSelangNozzle",
			"perawatanLantaiPulau",
			"perawatanDriveway",
			"perawatanLaci",
			"perawatanTiangKanopiLampu",
		),
	},
}

var aliases = map[string]Kind{
	"kantor":     KindOffice,
	"taman":      KindGarden,
	"driveaway":  KindDriveway,
	"awal_shift": KindAwalShift,
	"shift":      KindAwalShift,
}

// Variants returns every known checklist variant.
func Variants() []Variant {
	out := make([]Variant, len(variants))
	copy(out, variants)
	return out
}

// Lookup returns the variant registered under kind or one of its aliases.
func Lookup(kind string) (Variant, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(kind)))
	if alias, ok := aliases[string(k)]; ok {
		k = alias
	}
	for _, v := range variants {
		if v.Kind == k {
			return v, nil
		}
	}
	return Variant{}, ErrUnknownVariant
}

// InSection returns the variants owned by a route group.
func InSection(s user.Section) []Variant {
	var out []Variant
	for _, v := range variants {
		if v.Section == s {
			out = append(out, v)
		}
	}
	return out
}
