package matching

import (
	"testing"

	"github.com/adamwrona/rezydent/internal/catalogue"
	"github.com/adamwrona/rezydent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func basicModule(internships ...catalogue.InternshipRequirement) catalogue.ModuleRequirements {
	return catalogue.ModuleRequirements{
		ModuleID:    "basic",
		Type:        domain.ModuleBasic,
		Internships: internships,
	}
}

func TestMatchInternships_OldUnnamedFallback(t *testing.T) {
	// Module requires "Staż A" (30 days) and "Staż B" (20 days). A named
	// 30-day realization completes A; the unnamed 15-day realization also
	// falls back to A, so B stays at 0/20.
	mod := basicModule(
		catalogue.InternshipRequirement{ID: "a", Name: "Staż A", WorkingDays: 30},
		catalogue.InternshipRequirement{ID: "b", Name: "Staż B", WorkingDays: 20},
	)
	matches := MatchInternships(InternshipInput{
		Version:        domain.SMKOld,
		Module:         mod,
		HasBasicModule: true,
		Realizations: []*domain.Internship{
			{ID: "r1", Version: domain.SMKOld, Year: 1, Name: "Staż A", DaysCount: 30},
			{ID: "r2", Version: domain.SMKOld, Year: 1, Name: "", DaysCount: 15},
		},
	})
	require.Len(t, matches, 2)

	assert.True(t, matches[0].Completed)
	assert.Equal(t, 45, matches[0].IntroducedDays, "unnamed realization attributed to first requirement")
	assert.ElementsMatch(t, []string{"r1", "r2"}, matches[0].RealizationIDs)

	assert.False(t, matches[1].Completed)
	assert.Equal(t, 0, matches[1].IntroducedDays)

	assert.Equal(t, 1, CompletedCount(matches))
}

func TestMatchInternships_OldYearZeroAlwaysCandidate(t *testing.T) {
	mod := catalogue.ModuleRequirements{
		ModuleID: "spec",
		Type:     domain.ModuleSpecialistic,
		Internships: []catalogue.InternshipRequirement{
			{ID: "k", Name: "Kardiologia", WorkingDays: 10},
		},
	}
	matches := MatchInternships(InternshipInput{
		Version:        domain.SMKOld,
		Module:         mod,
		HasBasicModule: true, // specialistic range is years 3-6
		Realizations: []*domain.Internship{
			{ID: "unassigned", Version: domain.SMKOld, Year: 0, Name: "Kardiologia", DaysCount: 10},
			{ID: "outside", Version: domain.SMKOld, Year: 1, Name: "Kardiologia", DaysCount: 99},
		},
	})
	require.Len(t, matches, 1)
	assert.True(t, matches[0].Completed)
	assert.Equal(t, 10, matches[0].IntroducedDays, "year 0 included, year 1 outside range excluded")
	assert.Equal(t, []string{"unassigned"}, matches[0].RealizationIDs)
}

func TestMatchInternships_OldFuzzyName(t *testing.T) {
	mod := basicModule(
		catalogue.InternshipRequirement{ID: "k", Name: "Staż kierunkowy – Kardiologia", WorkingDays: 20},
	)
	matches := MatchInternships(InternshipInput{
		Version:        domain.SMKOld,
		Module:         mod,
		HasBasicModule: true,
		Realizations: []*domain.Internship{
			{ID: "r1", Version: domain.SMKOld, Year: 2, Name: "staz kierunkowy kardiologia", DaysCount: 20},
		},
	})
	require.Len(t, matches, 1)
	assert.True(t, matches[0].Completed, "diacritic- and punctuation-insensitive match")
}

func TestMatchInternships_NoPartialCredit(t *testing.T) {
	mod := basicModule(
		catalogue.InternshipRequirement{ID: "a", Name: "Staż A", WorkingDays: 30},
	)
	matches := MatchInternships(InternshipInput{
		Version:        domain.SMKOld,
		Module:         mod,
		HasBasicModule: true,
		Realizations: []*domain.Internship{
			{ID: "r1", Version: domain.SMKOld, Year: 1, Name: "Staż A", DaysCount: 29},
		},
	})
	require.Len(t, matches, 1)
	assert.False(t, matches[0].Completed, "29 < 30: no rounding tolerance")
	assert.Equal(t, 29, matches[0].IntroducedDays)
}

func TestMatchInternships_New(t *testing.T) {
	mod := basicModule(
		catalogue.InternshipRequirement{ID: "a", Name: "Staż A", WorkingDays: 30},
		catalogue.InternshipRequirement{ID: "b", Name: "Staż B", WorkingDays: 20},
	)
	matches := MatchInternships(InternshipInput{
		Version: domain.SMKNew,
		Module:  mod,
		Realizations: []*domain.Internship{
			{ID: "r1", Version: domain.SMKNew, RequirementID: "b", DaysCount: 20, Name: "ignored for new"},
			{ID: "r2", Version: domain.SMKNew, RequirementID: "a", DaysCount: 10},
		},
	})
	require.Len(t, matches, 2)
	assert.False(t, matches[0].Completed)
	assert.Equal(t, 10, matches[0].IntroducedDays)
	assert.True(t, matches[1].Completed, "new generation matches by requirement id only")
}

func TestMatchInternships_EmptyModule(t *testing.T) {
	matches := MatchInternships(InternshipInput{
		Version:        domain.SMKOld,
		Module:         catalogue.ModuleRequirements{ModuleID: "x", Type: domain.ModuleBasic},
		HasBasicModule: true,
		Realizations: []*domain.Internship{
			{ID: "r1", Year: 1, Name: "whatever", DaysCount: 5},
		},
	})
	assert.Empty(t, matches, "missing requirement set yields zero completed, not an error")
}
