package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryFraction(t *testing.T) {
	cases := []struct {
		completed, required int
		want                float64
	}{
		{0, 10, 0},
		{5, 10, 0.5},
		{10, 10, 1},
		{500, 10, 1}, // skewed input clamps, never overshoots
		{3, 0, 0},    // zero required contributes zero, not 100%
	}
	for _, tc := range cases {
		c := CategoryProgress{Completed: tc.completed, Required: tc.required}
		assert.InDelta(t, tc.want, c.Fraction(), 1e-9, "completed=%d required=%d", tc.completed, tc.required)
	}
}

func TestOverall_AllComplete(t *testing.T) {
	s := SpecializationStatistics{
		Internships:         CategoryProgress{4, 4},
		Courses:             CategoryProgress{3, 3},
		ProceduresOperator:  CategoryProgress{2, 2},
		ProceduresAssistant: CategoryProgress{1, 1},
	}
	assert.InDelta(t, 1.0, Overall(s), 1e-9)
}

func TestOverall_NothingLogged(t *testing.T) {
	s := SpecializationStatistics{
		Internships:         CategoryProgress{0, 4},
		Courses:             CategoryProgress{0, 3},
		ProceduresOperator:  CategoryProgress{0, 2},
		ProceduresAssistant: CategoryProgress{0, 1},
	}
	assert.InDelta(t, 0.10, Overall(s), 1e-9, "the flat other-activities term is always contributed")
}

func TestOverall_WeightedMix(t *testing.T) {
	s := SpecializationStatistics{
		Internships:         CategoryProgress{2, 4}, // 0.5
		Courses:             CategoryProgress{3, 3}, // 1.0
		ProceduresOperator:  CategoryProgress{1, 2}, // 0.5, weight 2
		ProceduresAssistant: CategoryProgress{0, 2}, // 0.0, weight 2
	}
	// 0.35*0.5 + 0.25*1.0 + 0.30*0.25 + 0.10 = 0.175 + 0.25 + 0.075 + 0.10
	assert.InDelta(t, 0.60, Overall(s), 1e-9)
}

func TestOverall_Clamped(t *testing.T) {
	s := SpecializationStatistics{
		Internships:         CategoryProgress{500, 10},
		Courses:             CategoryProgress{500, 10},
		ProceduresOperator:  CategoryProgress{500, 10},
		ProceduresAssistant: CategoryProgress{500, 10},
	}
	assert.LessOrEqual(t, Overall(s), 1.0)
	assert.InDelta(t, 1.0, Overall(s), 1e-9)
}

func TestProcedureBlend_SingleRole(t *testing.T) {
	// Only operator counts required: blend collapses to operator fraction.
	s := SpecializationStatistics{
		ProceduresOperator:  CategoryProgress{1, 2},
		ProceduresAssistant: CategoryProgress{0, 0},
	}
	got := Overall(s)
	// 0.30 * 0.5 + 0.10
	assert.InDelta(t, 0.25, got, 1e-9)
}

func TestShiftHoursFraction(t *testing.T) {
	assert.InDelta(t, 0.5, ShiftHoursProgress{Completed: 160, Required: 320}.Fraction(), 1e-9)
	assert.InDelta(t, 1.0, ShiftHoursProgress{Completed: 999, Required: 320}.Fraction(), 1e-9)
	assert.InDelta(t, 0.0, ShiftHoursProgress{Completed: 10, Required: 0}.Fraction(), 1e-9)
}
