package user

// Section is a top-level route group of the dashboard.
type Section string

const (
	SectionAdmin      Section = "/admin"
	SectionSupervisor Section = "/supervisor"
	SectionOperator   Section = "/operator"
	SectionOB         Section = "/ob"
	SectionSatpam     Section = "/satpam"
)

// Sections lists every guarded route group.
var Sections = []Section{SectionAdmin, SectionSupervisor, SectionOperator, SectionOB, SectionSatpam}

// roleSections maps roles to the section they land on after login.
var roleSections = map[Role]Section{
	RoleAdminPusat: SectionAdmin,
	RoleSupervisor: SectionSupervisor,
	RoleOperator:   SectionOperator,
	RoleOB:         SectionOB,
	RoleSatpam:     SectionSatpam,
}

// Section returns the route group owned by r.
func (r Role) Section() (Section, error) {
	s, ok := roleSections[r]
	if !ok {
		return "", ErrUnknownRole
	}
	return s, nil
}

// LandingRoute returns the dashboard path a user with role r is sent to.
func (r Role) LandingRoute() (string, error) {
	s, err := r.Section()
	if err != nil {
		return "", err
	}
	return string(s) + "/dashboard", nil
}
