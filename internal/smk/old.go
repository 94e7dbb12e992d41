package smk

import "github.com/adamwrona/rezydent/internal/domain"

// oldStrategy describes the pre-2023 SMK schema generation: realizations are
// bucketed by training year, requirements are referenced only by free text,
// and procedures use a one-letter role code.
type oldStrategy struct{}

func (oldStrategy) Version() domain.SMKVersion { return domain.SMKOld }

func (oldStrategy) VisibleFields(view string) []string    { return oldTable.visibleFields(view) }
func (oldStrategy) Label(view, field string) string       { return oldTable.label(view, field) }
func (oldStrategy) RequiredFields(view string) []string   { return oldTable.requiredFields(view) }
func (oldStrategy) Default(view, field string) string     { return oldTable.defaultValue(view, field) }
func (oldStrategy) ValidationMessage(view, rule string) string {
	return oldTable.validationMessage(view, rule)
}
func (oldStrategy) Options(view, field string) []Option { return oldTable.fieldOptions(view, field) }

var oldYearOptions = []Option{
	{Value: "0", Label: "nieprzypisany"},
	{Value: "1", Label: "rok 1"},
	{Value: "2", Label: "rok 2"},
	{Value: "3", Label: "rok 3"},
	{Value: "4", Label: "rok 4"},
	{Value: "5", Label: "rok 5"},
	{Value: "6", Label: "rok 6"},
}

var oldTable = table{
	visible: map[string][]string{
		ViewMedicalShift: {"year", "hours", "minutes", "location"},
		ViewInternship:   {"year", "name", "institution", "days_count"},
		ViewProcedure:    {"year", "code", "role", "performing_person", "location", "date"},
		ViewCourse:       {"year", "name", "completion_date", "certificate_number"},
	},
	labels: map[string]map[string]string{
		ViewMedicalShift: {
			"year":     "Rok szkolenia",
			"hours":    "Liczba godzin",
			"minutes":  "Liczba minut",
			"location": "Miejsce dyżuru",
		},
		ViewInternship: {
			"year":        "Rok szkolenia",
			"name":        "Nazwa stażu",
			"institution": "Jednostka szkoląca",
			"days_count":  "Liczba dni roboczych",
		},
		ViewProcedure: {
			"year":              "Rok szkolenia",
			"code":              "Kod zabiegu",
			"role":              "Kod roli",
			"performing_person": "Osoba wykonująca",
			"location":          "Miejsce wykonania",
			"date":              "Data wykonania",
		},
		ViewCourse: {
			"year":               "Rok szkolenia",
			"name":               "Nazwa kursu",
			"completion_date":    "Data ukończenia",
			"certificate_number": "Numer zaświadczenia",
		},
	},
	required: map[string][]string{
		ViewMedicalShift: {"hours"},
		ViewInternship:   {"name", "days_count"},
		ViewProcedure:    {"code", "role"},
		ViewCourse:       {"name"},
	},
	defaults: map[string]map[string]string{
		ViewMedicalShift: {"year": "0", "minutes": "0"},
		ViewInternship:   {"year": "0"},
		ViewProcedure:    {"year": "0", "role": "A"},
		ViewCourse:       {"year": "0"},
	},
	messages: map[string]map[string]string{
		ViewMedicalShift: {
			"duration": "Czas trwania dyżuru musi być większy od zera",
			"year":     "Rok szkolenia musi być równy 0 lub mieścić się w okresie specjalizacji",
		},
		ViewInternship: {
			"days": "Liczba dni roboczych musi być większa od zera",
			"year": "Rok szkolenia musi być równy 0 lub mieścić się w okresie specjalizacji",
		},
		ViewProcedure: {
			"role": "Kod roli musi mieć wartość A (operator) lub B (asysta)",
			"year": "Rok szkolenia musi być równy 0 lub mieścić się w okresie specjalizacji",
		},
		ViewCourse: {
			"name": "Nazwa kursu jest wymagana",
		},
	},
	options: map[string]map[string][]Option{
		ViewMedicalShift: {"year": oldYearOptions},
		ViewInternship:   {"year": oldYearOptions},
		ViewCourse:       {"year": oldYearOptions},
		ViewProcedure: {
			"year": oldYearOptions,
			"role": {
				{Value: "A", Label: "operator"},
				{Value: "B", Label: "asysta"},
			},
		},
	},
}
