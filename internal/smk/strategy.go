// Package smk selects field visibility, labels, defaults and validation
// messages for the two incompatible SMK schema generations. Strategies are
// pure lookup tables: no I/O, no side effects, deterministic.
package smk

import "github.com/adamwrona/rezydent/internal/domain"

// View names the strategies understand.
const (
	ViewMedicalShift = "medical_shift"
	ViewInternship   = "internship"
	ViewProcedure    = "procedure"
	ViewCourse       = "course"
)

// Option is one entry of an enumerated picker.
type Option struct {
	Value string
	Label string
}

// Strategy answers presentation and validation questions for one schema
// generation. Querying an unrecognized view returns empty results (fail
// open); callers must not read absence as "no requirements".
type Strategy interface {
	Version() domain.SMKVersion
	VisibleFields(view string) []string
	Label(view, field string) string
	RequiredFields(view string) []string
	Default(view, field string) string
	ValidationMessage(view, rule string) string
	Options(view, field string) []Option
}

// ForVersion returns the strategy for the given version tag. Unknown tags
// fall back to the old-generation strategy, which is the permissive one.
func ForVersion(v domain.SMKVersion) Strategy {
	if v == domain.SMKNew {
		return newStrategy{}
	}
	return oldStrategy{}
}

// table is the shared lookup structure both strategies are built from.
type table struct {
	visible  map[string][]string
	labels   map[string]map[string]string
	required map[string][]string
	defaults map[string]map[string]string
	messages map[string]map[string]string
	options  map[string]map[string][]Option
}

func (t *table) visibleFields(view string) []string {
	return append([]string(nil), t.visible[view]...)
}

func (t *table) label(view, field string) string {
	return t.labels[view][field]
}

func (t *table) requiredFields(view string) []string {
	return append([]string(nil), t.required[view]...)
}

func (t *table) defaultValue(view, field string) string {
	return t.defaults[view][field]
}

func (t *table) validationMessage(view, rule string) string {
	return t.messages[view][rule]
}

func (t *table) fieldOptions(view, field string) []Option {
	return append([]Option(nil), t.options[view][field]...)
}
