package service

import (
	"context"
	"errors"
	"time"

	"github.com/adamwrona/rezydent/internal/catalogue"
	"github.com/adamwrona/rezydent/internal/db"
	"github.com/adamwrona/rezydent/internal/domain"
	"github.com/adamwrona/rezydent/internal/matching"
	"github.com/adamwrona/rezydent/internal/repository"
)

// loadProgram resolves the requirement tree for a specialization. A missing
// document degrades to an empty program: realizations stay loggable, every
// category simply has nothing required.
func loadProgram(source catalogue.Source, spec *domain.Specialization) (*catalogue.Program, error) {
	program, err := source.Program(spec.ProgramCode, spec.SMKVersion)
	if err != nil {
		if errors.Is(err, catalogue.ErrProgramNotFound) {
			return &catalogue.Program{ProgramCode: spec.ProgramCode, SMKVersion: spec.SMKVersion}, nil
		}
		return nil, err
	}
	return program, nil
}

// requirementsFor pairs a stored module with its catalogue bucket, by name
// and type first, then by type alone. A module the document does not describe
// gets an empty requirement set.
func requirementsFor(p *catalogue.Program, m *domain.Module) catalogue.ModuleRequirements {
	for _, c := range p.Modules {
		if c.Name == m.Name && c.Type == m.Type {
			return c
		}
	}
	for _, c := range p.Modules {
		if c.Type == m.Type {
			return c
		}
	}
	return catalogue.ModuleRequirements{Type: m.Type}
}

// recomputeModuleCounters rebuilds every derived counter of the
// specialization's modules from the full realization set. Counters are never
// adjusted incrementally; each mutation pays for a full recomputation so the
// stored aggregates cannot drift.
func recomputeModuleCounters(ctx context.Context, tx db.DBTX, source catalogue.Source, spec *domain.Specialization, now time.Time) error {
	moduleRepo := repository.NewSQLiteModuleRepo(tx)

	modules, err := moduleRepo.ListBySpecialization(ctx, spec.ID)
	if err != nil {
		return err
	}
	program, err := loadProgram(source, spec)
	if err != nil {
		return err
	}
	hasBasic := program.HasBasicModule()

	internships, err := repository.NewSQLiteInternshipRepo(tx).ListBySpecialization(ctx, spec.ID)
	if err != nil {
		return err
	}
	shifts, err := repository.NewSQLiteShiftRepo(tx).ListBySpecialization(ctx, spec.ID)
	if err != nil {
		return err
	}
	procedures, err := repository.NewSQLiteProcedureRepo(tx).ListBySpecialization(ctx, spec.ID)
	if err != nil {
		return err
	}
	courses, err := repository.NewSQLiteCourseRepo(tx).ListBySpecialization(ctx, spec.ID)
	if err != nil {
		return err
	}

	for _, m := range modules {
		reqs := requirementsFor(program, m)

		internshipMatches := matching.MatchInternships(matching.InternshipInput{
			Version:        spec.SMKVersion,
			Module:         reqs,
			HasBasicModule: hasBasic,
			Realizations:   internships,
		})
		m.CompletedInternships = matching.CompletedCount(internshipMatches)
		m.TotalInternships = len(reqs.Internships)

		m.CompletedCourses = matching.CountCourses(matching.CourseInput{
			Version:        spec.SMKVersion,
			ModuleID:       m.ID,
			ModuleType:     m.Type,
			HasBasicModule: hasBasic,
			Realizations:   courses,
		})
		m.TotalCourses = reqs.MandatoryCourseCount()

		procedureMatches := matching.MatchProcedures(matching.ProcedureInput{
			Version:        spec.SMKVersion,
			Module:         reqs,
			HasBasicModule: hasBasic,
			Realizations:   procedures,
		})
		m.CompletedProceduresA, m.CompletedProceduresB = matching.CompletedProcedureCounts(procedureMatches)
		m.TotalProceduresA, m.TotalProceduresB = requiredProcedureCounts(reqs)

		m.CompletedShiftHours = matching.SumShiftHours(matching.ShiftInput{
			Version:        spec.SMKVersion,
			ModuleID:       m.ID,
			ModuleType:     m.Type,
			HasBasicModule: hasBasic,
			Realizations:   shifts,
		})
		m.RequiredShiftHours = reqs.RequiredShiftHours

		m.UpdatedAt = now
		if err := moduleRepo.Update(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

// requiredProcedureCounts counts requirements with a positive required total
// per role; a requirement demanding only assists does not inflate the
// operator denominator.
func requiredProcedureCounts(reqs catalogue.ModuleRequirements) (operator, assistant int) {
	for _, p := range reqs.Procedures {
		if p.RequiredAsOperator > 0 {
			operator++
		}
		if p.RequiredAsAssistant > 0 {
			assistant++
		}
	}
	return operator, assistant
}
