package smk

import (
	"testing"

	"github.com/adamwrona/rezydent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForVersion(t *testing.T) {
	assert.Equal(t, domain.SMKOld, ForVersion(domain.SMKOld).Version())
	assert.Equal(t, domain.SMKNew, ForVersion(domain.SMKNew).Version())
	assert.Equal(t, domain.SMKOld, ForVersion("").Version(), "unknown tags fall back to old")
}

func TestVisibleFieldsDiverge(t *testing.T) {
	old := ForVersion(domain.SMKOld).VisibleFields(ViewMedicalShift)
	nw := ForVersion(domain.SMKNew).VisibleFields(ViewMedicalShift)

	assert.Contains(t, old, "year")
	assert.NotContains(t, old, "date")
	assert.Contains(t, nw, "date")
	assert.NotContains(t, nw, "year")
}

func TestRequiredFields_UnknownViewFailsOpen(t *testing.T) {
	for _, v := range []domain.SMKVersion{domain.SMKOld, domain.SMKNew} {
		s := ForVersion(v)
		assert.Empty(t, s.RequiredFields("no_such_view"), "version=%s", v)
		assert.Empty(t, s.VisibleFields("no_such_view"), "version=%s", v)
		assert.Empty(t, s.Options("no_such_view", "x"), "version=%s", v)
	}
}

func TestDefaults(t *testing.T) {
	old := ForVersion(domain.SMKOld)
	assert.Equal(t, "0", old.Default(ViewMedicalShift, "year"), "old shifts default to unassigned year")
	assert.Equal(t, "A", old.Default(ViewProcedure, "role"))

	nw := ForVersion(domain.SMKNew)
	assert.Equal(t, "", nw.Default(ViewMedicalShift, "year"), "new generation has no year default")
}

func TestRoleOptions_OldOnly(t *testing.T) {
	old := ForVersion(domain.SMKOld).Options(ViewProcedure, "role")
	require.Len(t, old, 2)
	assert.Equal(t, "A", old[0].Value)

	nw := ForVersion(domain.SMKNew).Options(ViewProcedure, "role")
	assert.Empty(t, nw)
}

func TestValidationMessages(t *testing.T) {
	nw := ForVersion(domain.SMKNew)
	assert.NotEmpty(t, nw.ValidationMessage(ViewMedicalShift, "date_range"))
	assert.NotEmpty(t, nw.ValidationMessage(ViewMedicalShift, "duration"))

	old := ForVersion(domain.SMKOld)
	assert.Empty(t, old.ValidationMessage(ViewMedicalShift, "date_range"), "old generation has no date-range rule")
	assert.NotEmpty(t, old.ValidationMessage(ViewMedicalShift, "duration"))
}

func TestOptionsAndSlicesAreCopies(t *testing.T) {
	s := ForVersion(domain.SMKOld)
	a := s.RequiredFields(ViewInternship)
	require.NotEmpty(t, a)
	a[0] = "mutated"
	b := s.RequiredFields(ViewInternship)
	assert.NotEqual(t, "mutated", b[0], "callers must not be able to mutate the tables")
}
