package service

import (
	"context"
	"testing"
	"time"

	"github.com/adamwrona/rezydent/internal/contract"
	"github.com/adamwrona/rezydent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSpecialization_SeedsModulesFromProgram(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	spec := env.createSpecialization(t, domain.SMKOld)

	modules, err := env.modules.ListBySpecialization(ctx, spec.ID)
	require.NoError(t, err)
	require.Len(t, modules, 2)

	basic := env.moduleByType(t, spec.ID, domain.ModuleBasic)
	specialistic := env.moduleByType(t, spec.ID, domain.ModuleSpecialistic)

	assert.Equal(t, spec.CurrentModuleID, basic.ID, "first catalogue module becomes current")
	assert.Equal(t, 1, basic.TotalInternships)
	assert.Equal(t, 1, basic.TotalCourses)
	assert.Equal(t, 120.0, basic.RequiredShiftHours)
	assert.Equal(t, 2, specialistic.TotalInternships)
	assert.Equal(t, 1, specialistic.TotalCourses, "only mandatory courses count")
	assert.Equal(t, 1, specialistic.TotalProceduresA)
	assert.Equal(t, 1, specialistic.TotalProceduresB)
	assert.Equal(t, 0, specialistic.CompletedInternships)
}

func TestCreateSpecialization_UnknownProgram(t *testing.T) {
	env := setupEnv(t)

	spec, res, err := env.specSvc.Create(context.Background(), "Neurologia", "neurology", domain.SMKOld, time.Now().UTC())
	require.NoError(t, err)
	assert.Nil(t, spec)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, contract.FailureNotFound, res.Failures[0].Code)
}

func TestCreateSpecialization_ValidationFailures(t *testing.T) {
	env := setupEnv(t)

	_, res, err := env.specSvc.Create(context.Background(), "", "", domain.SMKVersion("weird"), time.Now().UTC())
	require.NoError(t, err)
	assert.Len(t, res.Failures, 3, "every violated rule reported independently")
}

func TestSetCurrentModule(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	spec := env.createSpecialization(t, domain.SMKOld)
	specialistic := env.moduleByType(t, spec.ID, domain.ModuleSpecialistic)

	res, err := env.specSvc.SetCurrentModule(ctx, spec.ID, specialistic.ID)
	require.NoError(t, err)
	require.True(t, res.OK())

	reloaded, err := env.specs.GetByID(ctx, spec.ID)
	require.NoError(t, err)
	assert.Equal(t, specialistic.ID, reloaded.CurrentModuleID)
}

func TestSetCurrentModule_ForeignModuleRejected(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	first := env.createSpecialization(t, domain.SMKOld)
	second := env.createSpecialization(t, domain.SMKNew)
	foreign := env.moduleByType(t, second.ID, domain.ModuleBasic)

	res, err := env.specSvc.SetCurrentModule(ctx, first.ID, foreign.ID)
	require.NoError(t, err)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, contract.FailureValidation, res.Failures[0].Code)

	reloaded, err := env.specs.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.NotEqual(t, foreign.ID, reloaded.CurrentModuleID, "pointer must not move on failure")
}

func TestGetStatistics_NothingLogged(t *testing.T) {
	env := setupEnv(t)

	spec := env.createSpecialization(t, domain.SMKOld)

	resp, err := env.specSvc.GetStatistics(context.Background(), spec.ID)
	require.NoError(t, err)
	assert.InDelta(t, 0.10, resp.Statistics.OverallProgress, 1e-9,
		"empty log still earns the flat other-activities share")
	assert.Equal(t, 3, resp.Statistics.Internships.Required)
	assert.Equal(t, 600.0, resp.Statistics.ShiftHours.Required)
	assert.Equal(t, 6, resp.Statistics.SelfEducation.Required)
	require.Len(t, resp.Modules, 2)
}

func TestGetStatistics_CachedUntilMutation(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	spec := env.createSpecialization(t, domain.SMKOld)

	first, err := env.specSvc.GetStatistics(ctx, spec.ID)
	require.NoError(t, err)
	second, err := env.specSvc.GetStatistics(ctx, spec.ID)
	require.NoError(t, err)
	assert.Same(t, first, second, "repeated reads serve the cached snapshot")

	shift := &domain.MedicalShift{SpecializationID: spec.ID, Year: 1, Hours: 10, Location: "SOR"}
	res, err := env.shiftSvc.Add(ctx, shift)
	require.NoError(t, err)
	require.True(t, res.OK(), "unexpected failures: %v", res.Failures)

	third, err := env.specSvc.GetStatistics(ctx, spec.ID)
	require.NoError(t, err)
	assert.NotSame(t, first, third, "mutation invalidates the snapshot")
	assert.Equal(t, 10.0, third.Statistics.ShiftHours.Completed)
}

func TestGetMatchedInternships_UnnamedFallbackScenario(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	spec := env.createSpecialization(t, domain.SMKOld)
	specialistic := env.moduleByType(t, spec.ID, domain.ModuleSpecialistic)

	add := func(name string, days int) {
		t.Helper()
		res, err := env.internshipSvc.Add(ctx, &domain.Internship{
			SpecializationID: spec.ID,
			ModuleID:         specialistic.ID,
			Year:             3,
			Name:             name,
			Institution:      "Szpital kliniczny",
			DaysCount:        days,
		})
		require.NoError(t, err)
		require.True(t, res.OK(), "unexpected failures: %v", res.Failures)
	}
	add("staz kierunkowy kardiologia", 30)
	add(domain.UnnamedPlaceholder, 15)

	grouped, err := env.specSvc.GetMatchedInternships(ctx, spec.ID)
	require.NoError(t, err)

	var matches []contract.MatchedInternship
	for _, g := range grouped {
		if g.ModuleID == specialistic.ID {
			matches = g.Matches
		}
	}
	require.Len(t, matches, 2)

	cardio, icu := matches[0], matches[1]
	assert.Equal(t, "int_cardio", cardio.RequirementID)
	assert.Equal(t, 45, cardio.IntroducedDays, "named 30 plus unnamed 15 fall to the first requirement")
	assert.True(t, cardio.Completed)
	assert.Equal(t, 0, icu.IntroducedDays, "unnamed days never spill into later requirements")
	assert.False(t, icu.Completed)

	specModule := env.moduleByType(t, spec.ID, domain.ModuleSpecialistic)
	assert.Equal(t, 1, specModule.CompletedInternships, "only fully met requirements count")
}
