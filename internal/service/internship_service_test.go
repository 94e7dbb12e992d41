package service

import (
	"context"
	"testing"

	"github.com/adamwrona/rezydent/internal/contract"
	"github.com/adamwrona/rezydent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddInternship_NoPartialCredit(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	spec := env.createSpecialization(t, domain.SMKOld)

	res, err := env.internshipSvc.Add(ctx, &domain.Internship{
		SpecializationID: spec.ID,
		Year:             3,
		Name:             "staz kierunkowy kardiologia",
		DaysCount:        29,
	})
	require.NoError(t, err)
	require.True(t, res.OK())

	specialistic := env.moduleByType(t, spec.ID, domain.ModuleSpecialistic)
	assert.Equal(t, 0, specialistic.CompletedInternships, "29 of 30 days is not completion")

	res, err = env.internshipSvc.Update(ctx, internshipID(t, env, spec.ID), "staz kierunkowy kardiologia", "", 30, 3)
	require.NoError(t, err)
	require.True(t, res.OK(), "unexpected failures: %v", res.Failures)

	specialistic = env.moduleByType(t, spec.ID, domain.ModuleSpecialistic)
	assert.Equal(t, 1, specialistic.CompletedInternships)
}

func internshipID(t *testing.T, env *testEnv, specializationID string) string {
	t.Helper()
	all, err := env.internships.ListBySpecialization(context.Background(), specializationID)
	require.NoError(t, err)
	require.NotEmpty(t, all)
	return all[0].ID
}

func TestAddInternship_YearOutOfRange(t *testing.T) {
	env := setupEnv(t)

	spec := env.createSpecialization(t, domain.SMKOld)

	res, err := env.internshipSvc.Add(context.Background(), &domain.Internship{
		SpecializationID: spec.ID,
		Year:             9,
		Name:             "Staż",
		DaysCount:        5,
	})
	require.NoError(t, err)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, "year", res.Failures[0].Field)
}

func TestAddInternship_YearZeroAllowed(t *testing.T) {
	env := setupEnv(t)

	spec := env.createSpecialization(t, domain.SMKOld)

	res, err := env.internshipSvc.Add(context.Background(), &domain.Internship{
		SpecializationID: spec.ID,
		Year:             0,
		Name:             "Staż kierunkowy – Intensywna terapia",
		DaysCount:        20,
	})
	require.NoError(t, err)
	require.True(t, res.OK(), "year 0 means not yet assigned and is always legal")

	specialistic := env.moduleByType(t, spec.ID, domain.ModuleSpecialistic)
	assert.Equal(t, 1, specialistic.CompletedInternships, "year-0 realizations are candidates everywhere")
}

func TestDeleteInternship_SyncedConflict(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	spec := env.createSpecialization(t, domain.SMKOld)
	stay := &domain.Internship{SpecializationID: spec.ID, Year: 1, Name: "Staż", DaysCount: 5}
	res, err := env.internshipSvc.Add(ctx, stay)
	require.NoError(t, err)
	require.True(t, res.OK())

	require.NoError(t, env.internshipSvc.MarkSynced(ctx, stay.ID))

	res, err = env.internshipSvc.Delete(ctx, stay.ID)
	require.NoError(t, err)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, contract.FailureConflict, res.Failures[0].Code)
}

func TestMarkSyncFailed_RecordsStatus(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	spec := env.createSpecialization(t, domain.SMKOld)
	stay := &domain.Internship{SpecializationID: spec.ID, Year: 1, Name: "Staż", DaysCount: 5}
	res, err := env.internshipSvc.Add(ctx, stay)
	require.NoError(t, err)
	require.True(t, res.OK())

	require.NoError(t, env.internshipSvc.MarkSyncFailed(ctx, stay.ID))

	reloaded, err := env.internships.GetByID(ctx, stay.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SyncFailed, reloaded.SyncStatus)
}
