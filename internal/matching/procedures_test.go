package matching

import (
	"testing"

	"github.com/adamwrona/rezydent/internal/catalogue"
	"github.com/adamwrona/rezydent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchProcedures_OldRoleCodes(t *testing.T) {
	mod := catalogue.ModuleRequirements{
		ModuleID: "basic",
		Type:     domain.ModuleBasic,
		Procedures: []catalogue.ProcedureRequirement{
			{ID: "p1", Code: "EKG-01", Name: "Elektrokardiogram", RequiredAsOperator: 2, RequiredAsAssistant: 1},
		},
	}
	matches := MatchProcedures(ProcedureInput{
		Version:        domain.SMKOld,
		Module:         mod,
		HasBasicModule: true,
		Realizations: []*domain.Procedure{
			{Version: domain.SMKOld, Year: 1, Code: "ekg-01", Role: domain.RoleOperator},
			{Version: domain.SMKOld, Year: 0, Code: "EKG-01", Role: domain.RoleOperator},
			{Version: domain.SMKOld, Year: 2, Code: "EKG-01", Role: domain.RoleAssistant},
			{Version: domain.SMKOld, Year: 5, Code: "EKG-01", Role: domain.RoleOperator}, // outside basic range
		},
	})
	require.Len(t, matches, 1)
	m := matches[0]
	assert.Equal(t, 2, m.OperatorDone, "case-insensitive code match, year 0 included, year 5 excluded")
	assert.Equal(t, 1, m.AssistantDone)
	assert.True(t, m.Completed)
}

func TestMatchProcedures_NewCounts(t *testing.T) {
	mod := catalogue.ModuleRequirements{
		ModuleID: "spec",
		Type:     domain.ModuleSpecialistic,
		Procedures: []catalogue.ProcedureRequirement{
			{ID: "koro", Code: "KOR-01", RequiredAsOperator: 50, RequiredAsAssistant: 100},
		},
	}
	matches := MatchProcedures(ProcedureInput{
		Version: domain.SMKNew,
		Module:  mod,
		Realizations: []*domain.Procedure{
			{Version: domain.SMKNew, RequirementID: "koro", CountOperator: 30, CountAssistant: 100},
			{Version: domain.SMKNew, RequirementID: "other", CountOperator: 99},
		},
	})
	require.Len(t, matches, 1)
	m := matches[0]
	assert.Equal(t, 30, m.OperatorDone)
	assert.Equal(t, 100, m.AssistantDone)
	assert.False(t, m.OperatorCompleted)
	assert.True(t, m.AssistantCompleted)
	assert.False(t, m.Completed, "both roles must be met")

	op, as := CompletedProcedureCounts(matches)
	assert.Equal(t, 0, op)
	assert.Equal(t, 1, as)
}
