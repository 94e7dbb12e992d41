// Package progress aggregates matched realizations into per-category counts
// and an overall weighted completion fraction.
package progress

// Category weights of the overall completion blend. The flat OtherWeight is
// contributed regardless of actual completion of the "other" categories;
// this mirrors the source system and is intentional.
const (
	InternshipWeight = 0.35
	CourseWeight     = 0.25
	ProcedureWeight  = 0.30
	OtherWeight      = 0.10
)

// CategoryProgress is a (completed, required) pair for one category.
type CategoryProgress struct {
	Completed int
	Required  int
}

// Fraction returns completion capped at 1.0. A category with nothing
// required contributes zero, it is not treated as 100%.
func (c CategoryProgress) Fraction() float64 {
	if c.Required <= 0 {
		return 0
	}
	f := float64(c.Completed) / float64(c.Required)
	if f > 1 {
		return 1
	}
	return f
}

// ShiftHoursProgress tracks duty-shift hours, which accumulate fractionally.
type ShiftHoursProgress struct {
	Completed float64
	Required  float64
}

// Fraction returns hour completion capped at 1.0.
func (s ShiftHoursProgress) Fraction() float64 {
	if s.Required <= 0 {
		return 0
	}
	f := s.Completed / s.Required
	if f > 1 {
		return 1
	}
	return f
}

// SpecializationStatistics is the snapshot returned by GetStatistics.
type SpecializationStatistics struct {
	Internships         CategoryProgress
	Courses             CategoryProgress
	ShiftHours          ShiftHoursProgress
	ProceduresOperator  CategoryProgress
	ProceduresAssistant CategoryProgress

	SelfEducation         CategoryProgress
	EducationalActivities CategoryProgress
	Publications          CategoryProgress
	Absences              CategoryProgress

	OverallProgress float64
}

// Overall computes the weighted completion fraction in [0, 1]:
// 0.35 internships + 0.25 courses + 0.30 procedures + a flat 0.10 for other
// activities. The procedure term blends operator and assistant progress
// weighted by their required counts when both are required.
func Overall(s SpecializationStatistics) float64 {
	total := InternshipWeight*s.Internships.Fraction() +
		CourseWeight*s.Courses.Fraction() +
		ProcedureWeight*procedureBlend(s.ProceduresOperator, s.ProceduresAssistant) +
		OtherWeight
	if total > 1 {
		return 1
	}
	if total < 0 {
		return 0
	}
	return total
}

// procedureBlend weights operator and assistant completion by how much of
// each is required. With only one role required the blend collapses to that
// role's fraction; with neither required the term is zero.
func procedureBlend(operator, assistant CategoryProgress) float64 {
	totalRequired := operator.Required + assistant.Required
	if totalRequired <= 0 {
		return 0
	}
	weighted := operator.Fraction()*float64(operator.Required) +
		assistant.Fraction()*float64(assistant.Required)
	return weighted / float64(totalRequired)
}
