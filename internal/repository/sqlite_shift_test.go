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

func seedSpecialization(t *testing.T, specs *SQLiteSpecializationRepo, modules *SQLiteModuleRepo) (*domain.Specialization, *domain.Module) {
	t.Helper()
	ctx := context.Background()

	spec := testutil.NewTestSpecialization("Kardiologia")
	require.NoError(t, specs.Create(ctx, spec))
	module := testutil.NewTestModule(spec.ID, "Moduł specjalistyczny")
	require.NoError(t, modules.Create(ctx, module))
	return spec, module
}

func TestShiftRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	specs := NewSQLiteSpecializationRepo(database)
	modules := NewSQLiteModuleRepo(database)
	shifts := NewSQLiteShiftRepo(database)
	ctx := context.Background()

	spec, module := seedSpecialization(t, specs, modules)

	shift := testutil.NewTestShift(spec.ID, module.ID,
		testutil.WithShiftYear(3),
		testutil.WithShiftDuration(10, 90),
	)
	require.NoError(t, shifts.Create(ctx, shift))

	got, err := shifts.GetByID(ctx, shift.ID)
	require.NoError(t, err)
	assert.Equal(t, shift.ID, got.ID)
	assert.Equal(t, domain.SMKOld, got.Version)
	assert.Equal(t, 3, got.Year)
	assert.Equal(t, 10, got.Hours)
	assert.Equal(t, 90, got.Minutes, "overflow minutes survive the round trip unchanged")
	assert.Equal(t, domain.SyncNotSynced, got.SyncStatus)
	assert.Nil(t, got.Date)
}

func TestShiftRepo_NewGenerationDate(t *testing.T) {
	database := testutil.NewTestDB(t)
	specs := NewSQLiteSpecializationRepo(database)
	modules := NewSQLiteModuleRepo(database)
	shifts := NewSQLiteShiftRepo(database)
	ctx := context.Background()

	spec, module := seedSpecialization(t, specs, modules)

	date := time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC)
	shift := testutil.NewTestShift(spec.ID, module.ID, testutil.WithShiftDate(date))
	shift.InternshipReq = "some-internship"
	require.NoError(t, shifts.Create(ctx, shift))

	got, err := shifts.GetByID(ctx, shift.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Date)
	assert.True(t, got.Date.Equal(date))
	assert.Equal(t, "some-internship", got.InternshipReq)
}

func TestShiftRepo_UpdateNeverTouchesDate(t *testing.T) {
	database := testutil.NewTestDB(t)
	specs := NewSQLiteSpecializationRepo(database)
	modules := NewSQLiteModuleRepo(database)
	shifts := NewSQLiteShiftRepo(database)
	ctx := context.Background()

	spec, module := seedSpecialization(t, specs, modules)

	date := time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC)
	shift := testutil.NewTestShift(spec.ID, module.ID, testutil.WithShiftDate(date))
	require.NoError(t, shifts.Create(ctx, shift))

	other := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	shift.Date = &other
	shift.Hours = 24
	require.NoError(t, shifts.Update(ctx, shift))

	got, err := shifts.GetByID(ctx, shift.ID)
	require.NoError(t, err)
	assert.Equal(t, 24, got.Hours)
	require.NotNil(t, got.Date)
	assert.True(t, got.Date.Equal(date), "the persisted date is immutable")
}

func TestShiftRepo_ListByYear(t *testing.T) {
	database := testutil.NewTestDB(t)
	specs := NewSQLiteSpecializationRepo(database)
	modules := NewSQLiteModuleRepo(database)
	shifts := NewSQLiteShiftRepo(database)
	ctx := context.Background()

	spec, module := seedSpecialization(t, specs, modules)

	for _, year := range []int{1, 1, 3} {
		require.NoError(t, shifts.Create(ctx, testutil.NewTestShift(spec.ID, module.ID, testutil.WithShiftYear(year))))
	}

	firstYear, err := shifts.ListByYear(ctx, spec.ID, 1)
	require.NoError(t, err)
	assert.Len(t, firstYear, 2)

	all, err := shifts.ListBySpecialization(ctx, spec.ID)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestShiftRepo_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	shifts := NewSQLiteShiftRepo(database)
	ctx := context.Background()

	_, err := shifts.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	err = shifts.Delete(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	shift := testutil.NewTestShift("spec", "module")
	shift.ID = "missing"
	err = shifts.Update(ctx, shift)
	assert.ErrorIs(t, err, ErrNotFound)
}
