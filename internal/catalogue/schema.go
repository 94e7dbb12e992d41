package catalogue

import (
	"github.com/adamwrona/rezydent/internal/domain"
)

// Program is the top-level JSON structure of a specialization program
// requirement document. Documents are read-only reference data: loaded once
// per (program code, SMK version) and never mutated at runtime.
type Program struct {
	ProgramCode string             `json:"program_code"`
	SMKVersion  domain.SMKVersion  `json:"smk_version"`
	Name        string             `json:"name"`
	DurationYears int              `json:"duration_years,omitempty"`
	Modules     []ModuleRequirements `json:"modules"`
}

// ModuleRequirements is one typed bucket (basic or specialistic) of required
// activities.
type ModuleRequirements struct {
	ModuleID    string                 `json:"module_id"`
	Name        string                 `json:"name"`
	Type        domain.ModuleType      `json:"type"`
	Internships []InternshipRequirement `json:"internships,omitempty"`
	Courses     []CourseRequirement     `json:"courses,omitempty"`
	Procedures  []ProcedureRequirement  `json:"procedures,omitempty"`

	// RequiredShiftHours is the duty-shift hour total for the module.
	RequiredShiftHours float64 `json:"required_shift_hours,omitempty"`

	// Optional totals for the non-weighted categories.
	SelfEducationDays     int `json:"self_education_days,omitempty"`
	EducationalActivities int `json:"educational_activities,omitempty"`
	Publications          int `json:"publications,omitempty"`
}

type InternshipRequirement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	WorkingDays int    `json:"working_days"`
}

type CourseRequirement struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Weeks     int    `json:"weeks,omitempty"`
	Days      int    `json:"days,omitempty"`
	Mandatory bool   `json:"mandatory"`
}

type ProcedureRequirement struct {
	ID                  string `json:"id"`
	Code                string `json:"code"`
	Name                string `json:"name"`
	RequiredAsOperator  int    `json:"required_as_operator"`
	RequiredAsAssistant int    `json:"required_as_assistant"`
	InternshipType      string `json:"internship_type,omitempty"`
}

// HasBasicModule reports whether the program declares a basic module, which
// determines the year split for old-generation matching.
func (p *Program) HasBasicModule() bool {
	for _, m := range p.Modules {
		if m.Type == domain.ModuleBasic {
			return true
		}
	}
	return false
}

// Module returns the requirement bucket for the given module id. The second
// return value is false when the program document does not describe the
// module; callers treat that as an empty requirement set, not an error.
func (p *Program) Module(moduleID string) (ModuleRequirements, bool) {
	for _, m := range p.Modules {
		if m.ModuleID == moduleID {
			return m, true
		}
	}
	return ModuleRequirements{}, false
}

// MandatoryCourseCount returns how many of the module's courses are
// mandatory; only those count toward the required total.
func (m ModuleRequirements) MandatoryCourseCount() int {
	var n int
	for _, c := range m.Courses {
		if c.Mandatory {
			n++
		}
	}
	return n
}
