package cli

import (
	"context"
	"testing"
	"time"

	"github.com/adamwrona/rezydent/internal/contract"
	"github.com/adamwrona/rezydent/internal/domain"
	"github.com/adamwrona/rezydent/internal/service"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateFlag(t *testing.T) {
	var target time.Time
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	dateVar(fs, &target, "start", "start date")

	require.NoError(t, fs.Parse([]string{"--start", "2026-03-15"}))
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), target)

	fs = pflag.NewFlagSet("test", pflag.ContinueOnError)
	dateVar(fs, &target, "start", "start date")
	assert.Error(t, fs.Parse([]string{"--start", "15.03.2026"}))
}

func TestParseOptionalDate(t *testing.T) {
	got, err := parseOptionalDate("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = parseOptionalDate("2026-03-15")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2026, got.Year())

	_, err = parseOptionalDate("not-a-date")
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "a very ...", truncate("a very long location name", 10))
}

func TestPrintResult(t *testing.T) {
	assert.True(t, printResult(contract.Result{}))

	var res contract.Result
	res.Add(contract.FailureValidation, "year", "Rok szkolenia musi być dodatni")
	assert.False(t, printResult(res))
}

// stubSpecService implements just enough of the specialization service for
// resolveSpecialization tests.
type stubSpecService struct {
	service.SpecializationService
	specs []*domain.Specialization
}

func (s *stubSpecService) List(ctx context.Context) ([]*domain.Specialization, error) {
	return s.specs, nil
}

func (s *stubSpecService) GetByID(ctx context.Context, id string) (*domain.Specialization, error) {
	for _, sp := range s.specs {
		if sp.ID == id {
			return sp, nil
		}
	}
	return nil, assert.AnError
}

func TestResolveSpecialization(t *testing.T) {
	one := &domain.Specialization{ID: "spec-1", Name: "Kardiologia"}
	two := &domain.Specialization{ID: "spec-2", Name: "Neurologia"}

	t.Run("no specializations", func(t *testing.T) {
		app := &App{Specializations: &stubSpecService{}}
		_, err := resolveSpecialization(context.Background(), app, "")
		assert.Error(t, err)
	})

	t.Run("single auto-selected", func(t *testing.T) {
		app := &App{Specializations: &stubSpecService{specs: []*domain.Specialization{one}}}
		got, err := resolveSpecialization(context.Background(), app, "")
		require.NoError(t, err)
		assert.Equal(t, "spec-1", got.ID)
	})

	t.Run("multiple require a flag", func(t *testing.T) {
		app := &App{Specializations: &stubSpecService{specs: []*domain.Specialization{one, two}}}
		_, err := resolveSpecialization(context.Background(), app, "")
		assert.Error(t, err)

		got, err := resolveSpecialization(context.Background(), app, "spec-2")
		require.NoError(t, err)
		assert.Equal(t, "Neurologia", got.Name)
	})
}
