package repository

import (
	"context"
	"testing"

	"github.com/adamwrona/rezydent/internal/domain"
	"github.com/adamwrona/rezydent/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityRepo_CountByKind(t *testing.T) {
	database := testutil.NewTestDB(t)
	specs := NewSQLiteSpecializationRepo(database)
	modules := NewSQLiteModuleRepo(database)
	activities := NewSQLiteActivityRepo(database)
	ctx := context.Background()

	spec, module := seedSpecialization(t, specs, modules)

	for i := 0; i < 3; i++ {
		require.NoError(t, activities.Create(ctx, testutil.NewTestActivity(spec.ID, module.ID, domain.ActivitySelfEducation, "Samokształcenie")))
	}
	require.NoError(t, activities.Create(ctx, testutil.NewTestActivity(spec.ID, module.ID, domain.ActivityPublication, "Publikacja")))

	counts, err := activities.CountByKind(ctx, spec.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, counts[domain.ActivitySelfEducation])
	assert.Equal(t, 1, counts[domain.ActivityPublication])
	assert.Zero(t, counts[domain.ActivityAbsence])
}
