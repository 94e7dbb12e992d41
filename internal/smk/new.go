package smk

import "github.com/adamwrona/rezydent/internal/domain"

// newStrategy describes the current SMK schema generation: realizations
// reference requirements directly, carry explicit date ranges, and
// procedures record operator/assistant counts.
type newStrategy struct{}

func (newStrategy) Version() domain.SMKVersion { return domain.SMKNew }

func (newStrategy) VisibleFields(view string) []string    { return newTable.visibleFields(view) }
func (newStrategy) Label(view, field string) string       { return newTable.label(view, field) }
func (newStrategy) RequiredFields(view string) []string   { return newTable.requiredFields(view) }
func (newStrategy) Default(view, field string) string     { return newTable.defaultValue(view, field) }
func (newStrategy) ValidationMessage(view, rule string) string {
	return newTable.validationMessage(view, rule)
}
func (newStrategy) Options(view, field string) []Option { return newTable.fieldOptions(view, field) }

var newTable = table{
	visible: map[string][]string{
		ViewMedicalShift: {"date", "hours", "minutes", "internship_req", "location"},
		ViewInternship:   {"requirement_id", "institution", "days_count", "start_date", "end_date"},
		ViewProcedure:    {"requirement_id", "count_operator", "count_assistant", "date"},
		ViewCourse:       {"requirement_id", "completion_date", "certificate_number"},
	},
	labels: map[string]map[string]string{
		ViewMedicalShift: {
			"date":           "Data dyżuru",
			"hours":          "Liczba godzin",
			"minutes":        "Liczba minut",
			"internship_req": "Staż kierunkowy",
			"location":       "Miejsce dyżuru",
		},
		ViewInternship: {
			"requirement_id": "Staż z programu specjalizacji",
			"institution":    "Jednostka szkoląca",
			"days_count":     "Liczba dni roboczych",
			"start_date":     "Data rozpoczęcia",
			"end_date":       "Data zakończenia",
		},
		ViewProcedure: {
			"requirement_id":  "Procedura z programu specjalizacji",
			"count_operator":  "Liczba wykonana jako operator",
			"count_assistant": "Liczba wykonana jako asysta",
			"date":            "Data wykonania",
		},
		ViewCourse: {
			"requirement_id":     "Kurs z programu specjalizacji",
			"completion_date":    "Data ukończenia",
			"certificate_number": "Numer zaświadczenia",
		},
	},
	required: map[string][]string{
		ViewMedicalShift: {"date", "hours", "internship_req"},
		ViewInternship:   {"requirement_id", "days_count", "start_date", "end_date"},
		ViewProcedure:    {"requirement_id"},
		ViewCourse:       {"requirement_id", "completion_date"},
	},
	defaults: map[string]map[string]string{
		ViewMedicalShift: {"minutes": "0"},
		ViewProcedure:    {"count_operator": "0", "count_assistant": "0"},
	},
	messages: map[string]map[string]string{
		ViewMedicalShift: {
			"duration":   "Czas trwania dyżuru musi być większy od zera",
			"date_range": "Data dyżuru musi mieścić się w okresie trwania stażu",
			"year":       "Rok szkolenia musi być dodatni",
		},
		ViewInternship: {
			"days":       "Liczba dni roboczych musi być większa od zera",
			"date_range": "Data zakończenia nie może być wcześniejsza niż data rozpoczęcia",
			"requirement": "Wybierz staż z programu specjalizacji",
		},
		ViewProcedure: {
			"counts":      "Łączna liczba wykonań musi być większa od zera",
			"requirement": "Wybierz procedurę z programu specjalizacji",
		},
		ViewCourse: {
			"requirement": "Wybierz kurs z programu specjalizacji",
		},
	},
	options: map[string]map[string][]Option{},
}
