package service

import (
	"context"
	"testing"

	"github.com/adamwrona/rezydent/internal/contract"
	"github.com/adamwrona/rezydent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCourse_OldNameRequired(t *testing.T) {
	env := setupEnv(t)

	spec := env.createSpecialization(t, domain.SMKOld)

	res, err := env.courseSvc.Add(context.Background(), &domain.Course{
		SpecializationID: spec.ID,
		Year:             1,
	})
	require.NoError(t, err)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, "name", res.Failures[0].Field)
}

func TestAddCourse_NewRequirementAndDate(t *testing.T) {
	env := setupEnv(t)

	spec := env.createSpecialization(t, domain.SMKNew)

	res, err := env.courseSvc.Add(context.Background(), &domain.Course{
		SpecializationID: spec.ID,
	})
	require.NoError(t, err)
	assert.Len(t, res.Failures, 2, "requirement and completion date are independent rules")
}

func TestDeleteCourse_SyncedConflict(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	spec := env.createSpecialization(t, domain.SMKOld)
	course := &domain.Course{SpecializationID: spec.ID, Year: 1, Name: "Kurs wprowadzający"}
	res, err := env.courseSvc.Add(ctx, course)
	require.NoError(t, err)
	require.True(t, res.OK())

	require.NoError(t, env.courseSvc.MarkSynced(ctx, course.ID))

	res, err = env.courseSvc.Delete(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, contract.FailureConflict, res.Failures[0].Code)
}
