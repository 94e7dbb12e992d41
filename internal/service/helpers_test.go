package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/adamwrona/rezydent/internal/catalogue"
	"github.com/adamwrona/rezydent/internal/db"
	"github.com/adamwrona/rezydent/internal/domain"
	"github.com/adamwrona/rezydent/internal/repository"
	"github.com/adamwrona/rezydent/internal/testutil"
	"github.com/stretchr/testify/require"
)

// stubSource serves requirement trees from memory so service tests do not
// touch the filesystem.
type stubSource struct {
	programs map[string]*catalogue.Program
}

func (s stubSource) Program(code string, v domain.SMKVersion) (*catalogue.Program, error) {
	p, ok := s.programs[code+"_"+string(v)]
	if !ok {
		return nil, catalogue.ErrProgramNotFound
	}
	return p, nil
}

func testProgram(version domain.SMKVersion) *catalogue.Program {
	return &catalogue.Program{
		ProgramCode:   "cardiology",
		SMKVersion:    version,
		Name:          "Kardiologia",
		DurationYears: 6,
		Modules: []catalogue.ModuleRequirements{
			{
				ModuleID: "cardiology_basic",
				Name:     "Moduł podstawowy w zakresie chorób wewnętrznych",
				Type:     domain.ModuleBasic,
				Internships: []catalogue.InternshipRequirement{
					{ID: "int_basic", Name: "Staż podstawowy w zakresie chorób wewnętrznych", WorkingDays: 90},
				},
				Courses: []catalogue.CourseRequirement{
					{ID: "course_intro", Name: "Kurs wprowadzający", Mandatory: true},
				},
				RequiredShiftHours: 120,
			},
			{
				ModuleID: "cardiology_spec",
				Name:     "Moduł specjalistyczny w zakresie kardiologii",
				Type:     domain.ModuleSpecialistic,
				Internships: []catalogue.InternshipRequirement{
					{ID: "int_cardio", Name: "Staż kierunkowy – Kardiologia", WorkingDays: 30},
					{ID: "int_icu", Name: "Staż kierunkowy – Intensywna terapia", WorkingDays: 20},
				},
				Courses: []catalogue.CourseRequirement{
					{ID: "course_echo", Name: "Kurs echokardiografii", Mandatory: true},
					{ID: "course_opt", Name: "Kurs fakultatywny", Mandatory: false},
				},
				Procedures: []catalogue.ProcedureRequirement{
					{ID: "proc_echo", Code: "ECHO", Name: "Echokardiografia przezklatkowa", RequiredAsOperator: 2, RequiredAsAssistant: 1},
				},
				RequiredShiftHours:    480,
				SelfEducationDays:     6,
				EducationalActivities: 2,
				Publications:          1,
			},
		},
	}
}

type testEnv struct {
	db     *sql.DB
	uow    db.UnitOfWork
	cache  *StatsCache
	source stubSource

	specs       *repository.SQLiteSpecializationRepo
	modules     *repository.SQLiteModuleRepo
	shifts      *repository.SQLiteShiftRepo
	internships *repository.SQLiteInternshipRepo
	procedures  *repository.SQLiteProcedureRepo
	courses     *repository.SQLiteCourseRepo
	activities  *repository.SQLiteActivityRepo

	specSvc       SpecializationService
	shiftSvc      ShiftService
	internshipSvc InternshipService
	procedureSvc  ProcedureService
	courseSvc     CourseService
	activitySvc   ActivityService
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)

	env := &testEnv{
		db:          database,
		uow:         testutil.NewTestUoW(database),
		cache:       NewStatsCache(DefaultStatsTTL),
		specs:       repository.NewSQLiteSpecializationRepo(database),
		modules:     repository.NewSQLiteModuleRepo(database),
		shifts:      repository.NewSQLiteShiftRepo(database),
		internships: repository.NewSQLiteInternshipRepo(database),
		procedures:  repository.NewSQLiteProcedureRepo(database),
		courses:     repository.NewSQLiteCourseRepo(database),
		activities:  repository.NewSQLiteActivityRepo(database),
	}
	env.source = stubSource{programs: map[string]*catalogue.Program{
		"cardiology_old": testProgram(domain.SMKOld),
		"cardiology_new": testProgram(domain.SMKNew),
	}}

	env.specSvc = NewSpecializationService(env.specs, env.modules, env.internships, env.activities, env.source, env.uow, env.cache)
	env.shiftSvc = NewShiftService(env.shifts, env.internships, env.specs, env.source, env.uow, env.cache)
	env.internshipSvc = NewInternshipService(env.internships, env.specs, env.source, env.uow, env.cache)
	env.procedureSvc = NewProcedureService(env.procedures, env.specs, env.source, env.uow, env.cache)
	env.courseSvc = NewCourseService(env.courses, env.specs, env.source, env.uow, env.cache)
	env.activitySvc = NewActivityService(env.activities, env.specs, env.uow, env.cache)
	return env
}

// createSpecialization goes through the service so modules get seeded from
// the test program.
func (e *testEnv) createSpecialization(t *testing.T, version domain.SMKVersion) *domain.Specialization {
	t.Helper()
	spec, res, err := e.specSvc.Create(context.Background(), "Kardiologia", "cardiology", version, time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.True(t, res.OK(), "unexpected failures: %v", res.Failures)
	require.NotNil(t, spec)
	return spec
}

func (e *testEnv) moduleByType(t *testing.T, specializationID string, mt domain.ModuleType) *domain.Module {
	t.Helper()
	modules, err := e.modules.ListBySpecialization(context.Background(), specializationID)
	require.NoError(t, err)
	for _, m := range modules {
		if m.Type == mt {
			return m
		}
	}
	t.Fatalf("no module of type %s", mt)
	return nil
}
