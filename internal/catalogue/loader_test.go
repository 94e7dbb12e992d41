package catalogue

import (
	"testing"

	"github.com/adamwrona/rezydent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProgram(t *testing.T) {
	l := NewLoader("testdata")

	p, err := l.Program("cardiology", domain.SMKOld)
	require.NoError(t, err)
	assert.Equal(t, "cardiology", p.ProgramCode)
	assert.Equal(t, domain.SMKOld, p.SMKVersion)
	require.Len(t, p.Modules, 2)
	assert.True(t, p.HasBasicModule())

	basic, ok := p.Module("basic")
	require.True(t, ok)
	assert.Equal(t, domain.ModuleBasic, basic.Type)
	assert.Len(t, basic.Internships, 2)
	assert.Equal(t, 60, basic.Internships[0].WorkingDays)
	assert.Equal(t, 1, basic.MandatoryCourseCount(), "optional courses don't count toward the required total")
}

func TestLoadProgram_Cached(t *testing.T) {
	l := NewLoader("testdata")

	p1, err := l.Program("cardiology", domain.SMKOld)
	require.NoError(t, err)
	p2, err := l.Program("cardiology", domain.SMKOld)
	require.NoError(t, err)
	assert.Same(t, p1, p2, "documents are parsed once and cached")
}

func TestLoadProgram_Missing(t *testing.T) {
	l := NewLoader("testdata")

	_, err := l.Program("neurology", domain.SMKNew)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProgramNotFound)
}

func TestModule_MissingIsEmptyNotError(t *testing.T) {
	l := NewLoader("testdata")

	p, err := l.Program("cardiology", domain.SMKOld)
	require.NoError(t, err)

	m, ok := p.Module("does-not-exist")
	assert.False(t, ok)
	assert.Empty(t, m.Internships)
	assert.Empty(t, m.Procedures)
}
