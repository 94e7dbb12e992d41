package repository

import (
	"context"
	"testing"
	"time"

	"github.com/adamwrona/rezydent/internal/domain"
	"github.com/adamwrona/rezydent/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternshipRepo_RoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	specs := NewSQLiteSpecializationRepo(database)
	modules := NewSQLiteModuleRepo(database)
	internships := NewSQLiteInternshipRepo(database)
	ctx := context.Background()

	spec, module := seedSpecialization(t, specs, modules)

	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	stay := testutil.NewTestInternship(spec.ID, module.ID,
		testutil.WithInternshipName("Staż kierunkowy – Kardiologia"),
		testutil.WithInternshipDays(30),
	)
	stay.StartDate = &start
	stay.EndDate = &end
	require.NoError(t, internships.Create(ctx, stay))

	got, err := internships.GetByID(ctx, stay.ID)
	require.NoError(t, err)
	assert.Equal(t, "Staż kierunkowy – Kardiologia", got.Name)
	assert.Equal(t, 30, got.DaysCount)
	require.NotNil(t, got.StartDate)
	assert.True(t, got.StartDate.Equal(start))
	require.NotNil(t, got.EndDate)
	assert.True(t, got.EndDate.Equal(end))
}

func TestInternshipRepo_UpdateAndDelete(t *testing.T) {
	database := testutil.NewTestDB(t)
	specs := NewSQLiteSpecializationRepo(database)
	modules := NewSQLiteModuleRepo(database)
	internships := NewSQLiteInternshipRepo(database)
	ctx := context.Background()

	spec, module := seedSpecialization(t, specs, modules)

	stay := testutil.NewTestInternship(spec.ID, module.ID)
	require.NoError(t, internships.Create(ctx, stay))

	stay.DaysCount = 42
	stay.SyncStatus = domain.SyncModified
	require.NoError(t, internships.Update(ctx, stay))

	got, err := internships.GetByID(ctx, stay.ID)
	require.NoError(t, err)
	assert.Equal(t, 42, got.DaysCount)
	assert.Equal(t, domain.SyncModified, got.SyncStatus)

	require.NoError(t, internships.Delete(ctx, stay.ID))
	_, err = internships.GetByID(ctx, stay.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
