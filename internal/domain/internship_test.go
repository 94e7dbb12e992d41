package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternshipUnnamed(t *testing.T) {
	cases := []struct {
		name    string
		unnamed bool
	}{
		{"", true},
		{"(unnamed)", true},
		{"Oddział kardiologii", false},
	}
	for _, tc := range cases {
		i := &Internship{Name: tc.name}
		assert.Equal(t, tc.unnamed, i.Unnamed(), "name=%q", tc.name)
	}
}

func TestYearRange(t *testing.T) {
	lo, hi := YearRange(ModuleBasic, true)
	assert.Equal(t, 1, lo)
	assert.Equal(t, 2, hi)

	lo, hi = YearRange(ModuleSpecialistic, true)
	assert.Equal(t, 3, lo)
	assert.Equal(t, 6, hi)

	lo, hi = YearRange(ModuleSpecialistic, false)
	assert.Equal(t, 1, lo, "programs without a basic module start at year 1")
	assert.Equal(t, 6, hi)
}

func TestProcedureCounts(t *testing.T) {
	old := &Procedure{Version: SMKOld, Role: RoleOperator}
	assert.Equal(t, 1, old.OperatorCount())
	assert.Equal(t, 0, old.AssistantCount())

	old.Role = RoleAssistant
	assert.Equal(t, 0, old.OperatorCount())
	assert.Equal(t, 1, old.AssistantCount())

	nw := &Procedure{Version: SMKNew, CountOperator: 4, CountAssistant: 2}
	assert.Equal(t, 4, nw.OperatorCount())
	assert.Equal(t, 2, nw.AssistantCount())
}
