package service

import (
	"context"
	"errors"
	"time"

	"github.com/adamwrona/rezydent/internal/catalogue"
	"github.com/adamwrona/rezydent/internal/contract"
	"github.com/adamwrona/rezydent/internal/db"
	"github.com/adamwrona/rezydent/internal/domain"
	"github.com/adamwrona/rezydent/internal/matching"
	"github.com/adamwrona/rezydent/internal/progress"
	"github.com/adamwrona/rezydent/internal/repository"
	"github.com/google/uuid"
)

type specializationService struct {
	specs       repository.SpecializationRepo
	modules     repository.ModuleRepo
	internships repository.InternshipRepo
	activities  repository.ActivityRepo
	source      catalogue.Source
	uow         db.UnitOfWork
	cache       *StatsCache
	obs         UseCaseObserver
}

func NewSpecializationService(specs repository.SpecializationRepo, modules repository.ModuleRepo, internships repository.InternshipRepo, activities repository.ActivityRepo, source catalogue.Source, uow db.UnitOfWork, cache *StatsCache, observers ...UseCaseObserver) SpecializationService {
	return &specializationService{
		specs:       specs,
		modules:     modules,
		internships: internships,
		activities:  activities,
		source:      source,
		uow:         uow,
		cache:       cache,
		obs:         useCaseObserverOrNoop(observers),
	}
}

// Create registers a new specialization and seeds its modules from the
// catalogue document for (programCode, version). The first module in
// catalogue order becomes the current one.
func (s *specializationService) Create(ctx context.Context, name, programCode string, version domain.SMKVersion, startDate time.Time) (*domain.Specialization, contract.Result, error) {
	start := time.Now()

	var res contract.Result
	if name == "" {
		res.Add(contract.FailureValidation, "name", "Nazwa specjalizacji jest wymagana")
	}
	if programCode == "" {
		res.Add(contract.FailureValidation, "program_code", "Kod programu jest wymagany")
	}
	if !domain.ValidSMKVersions[string(version)] {
		res.Add(contract.FailureValidation, "smk_version", "Wersja SMK musi mieć wartość old lub new")
	}
	if !res.OK() {
		return nil, res, nil
	}

	program, err := s.source.Program(programCode, version)
	if err != nil {
		if errors.Is(err, catalogue.ErrProgramNotFound) {
			return nil, notFound("program specjalizacji"), nil
		}
		return nil, contract.Result{}, err
	}

	now := time.Now().UTC()
	spec := &domain.Specialization{
		ID:          uuid.New().String(),
		Name:        name,
		ProgramCode: programCode,
		SMKVersion:  version,
		StartDate:   startDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	modules := make([]*domain.Module, 0, len(program.Modules))
	for idx, c := range program.Modules {
		modules = append(modules, &domain.Module{
			ID:               uuid.New().String(),
			SpecializationID: spec.ID,
			Name:             c.Name,
			Type:             c.Type,
			OrderIndex:       idx,
			CreatedAt:        now,
			UpdatedAt:        now,
		})
	}
	if len(modules) > 0 {
		spec.CurrentModuleID = modules[0].ID
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteSpecializationRepo(tx).Create(ctx, spec); err != nil {
			return err
		}
		txModules := repository.NewSQLiteModuleRepo(tx)
		for _, m := range modules {
			if err := txModules.Create(ctx, m); err != nil {
				return err
			}
		}
		return recomputeModuleCounters(ctx, tx, s.source, spec, now)
	})
	emit(ctx, s.obs, "specialization.create", start, err, map[string]any{"program_code": programCode, "smk_version": string(version)})
	if err != nil {
		return nil, contract.Result{}, err
	}
	return spec, contract.Result{}, nil
}

func (s *specializationService) GetByID(ctx context.Context, id string) (*domain.Specialization, error) {
	return s.specs.GetByID(ctx, id)
}

func (s *specializationService) List(ctx context.Context) ([]*domain.Specialization, error) {
	return s.specs.List(ctx)
}

func (s *specializationService) Modules(ctx context.Context, specializationID string) ([]*domain.Module, error) {
	return s.modules.ListBySpecialization(ctx, specializationID)
}

// SetCurrentModule is the only way the current-module pointer moves; logging
// realizations never changes it implicitly.
func (s *specializationService) SetCurrentModule(ctx context.Context, specializationID, moduleID string) (contract.Result, error) {
	start := time.Now()

	spec, err := s.specs.GetByID(ctx, specializationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("specjalizacja"), nil
		}
		return contract.Result{}, err
	}

	module, err := s.modules.GetByID(ctx, moduleID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("moduł"), nil
		}
		return contract.Result{}, err
	}
	if module.SpecializationID != spec.ID {
		return contract.Fail(contract.FailureValidation, "module_id", "Moduł nie należy do tej specjalizacji"), nil
	}

	now := time.Now().UTC()
	if err := spec.SetCurrentModule(moduleID, now); err != nil {
		return contract.Fail(contract.FailureValidation, "module_id", err.Error()), nil
	}

	err = s.specs.Update(ctx, spec)
	emit(ctx, s.obs, "specialization.set_current_module", start, err, map[string]any{"module_id": moduleID})
	if err != nil {
		return contract.Result{}, err
	}
	s.cache.Invalidate(spec.ID)
	return contract.Result{}, nil
}

// GetStatistics returns the progress snapshot, served from the TTL cache
// when a fresh one exists. Module counters are already recomputed on every
// mutation, so the snapshot reads stored aggregates plus activity counts.
func (s *specializationService) GetStatistics(ctx context.Context, specializationID string) (*contract.StatisticsResponse, error) {
	if cached, ok := s.cache.get(specializationID); ok {
		return cached, nil
	}
	start := time.Now()

	spec, err := s.specs.GetByID(ctx, specializationID)
	if err != nil {
		return nil, err
	}
	modules, err := s.modules.ListBySpecialization(ctx, spec.ID)
	if err != nil {
		return nil, err
	}
	program, err := loadProgram(s.source, spec)
	if err != nil {
		return nil, err
	}
	activityCounts, err := s.activities.CountByKind(ctx, spec.ID)
	if err != nil {
		return nil, err
	}

	resp := &contract.StatisticsResponse{
		SpecializationID: spec.ID,
		GeneratedAt:      time.Now().UTC(),
	}

	var total progress.SpecializationStatistics
	for _, m := range modules {
		stats := moduleStatistics(m)
		stats.OverallProgress = progress.Overall(stats)
		resp.Modules = append(resp.Modules, contract.ModuleStatistics{
			ModuleID:   m.ID,
			ModuleName: m.Name,
			Statistics: stats,
		})

		total.Internships.Completed += stats.Internships.Completed
		total.Internships.Required += stats.Internships.Required
		total.Courses.Completed += stats.Courses.Completed
		total.Courses.Required += stats.Courses.Required
		total.ShiftHours.Completed += stats.ShiftHours.Completed
		total.ShiftHours.Required += stats.ShiftHours.Required
		total.ProceduresOperator.Completed += stats.ProceduresOperator.Completed
		total.ProceduresOperator.Required += stats.ProceduresOperator.Required
		total.ProceduresAssistant.Completed += stats.ProceduresAssistant.Completed
		total.ProceduresAssistant.Required += stats.ProceduresAssistant.Required
	}

	total.SelfEducation = progress.CategoryProgress{
		Completed: activityCounts[domain.ActivitySelfEducation],
		Required:  sumInts(program, func(m catalogue.ModuleRequirements) int { return m.SelfEducationDays }),
	}
	total.EducationalActivities = progress.CategoryProgress{
		Completed: activityCounts[domain.ActivityEducational],
		Required:  sumInts(program, func(m catalogue.ModuleRequirements) int { return m.EducationalActivities }),
	}
	total.Publications = progress.CategoryProgress{
		Completed: activityCounts[domain.ActivityPublication],
		Required:  sumInts(program, func(m catalogue.ModuleRequirements) int { return m.Publications }),
	}
	total.Absences = progress.CategoryProgress{
		Completed: activityCounts[domain.ActivityAbsence],
	}
	total.OverallProgress = progress.Overall(total)
	resp.Statistics = total

	emit(ctx, s.obs, "specialization.get_statistics", start, nil, map[string]any{"specialization_id": spec.ID})
	s.cache.put(spec.ID, resp)
	return resp, nil
}

// GetMatchedInternships exposes the requirement-by-requirement internship
// attribution, grouped by module.
func (s *specializationService) GetMatchedInternships(ctx context.Context, specializationID string) ([]contract.ModuleInternships, error) {
	spec, err := s.specs.GetByID(ctx, specializationID)
	if err != nil {
		return nil, err
	}
	modules, err := s.modules.ListBySpecialization(ctx, spec.ID)
	if err != nil {
		return nil, err
	}
	program, err := loadProgram(s.source, spec)
	if err != nil {
		return nil, err
	}
	internships, err := s.internships.ListBySpecialization(ctx, spec.ID)
	if err != nil {
		return nil, err
	}

	hasBasic := program.HasBasicModule()
	out := make([]contract.ModuleInternships, 0, len(modules))
	for _, m := range modules {
		reqs := requirementsFor(program, m)
		matches := matching.MatchInternships(matching.InternshipInput{
			Version:        spec.SMKVersion,
			Module:         reqs,
			HasBasicModule: hasBasic,
			Realizations:   internships,
		})

		view := contract.ModuleInternships{ModuleID: m.ID, ModuleName: m.Name}
		for _, match := range matches {
			view.Matches = append(view.Matches, contract.MatchedInternship{
				RequirementID:   match.Requirement.ID,
				RequirementName: match.Requirement.Name,
				RequiredDays:    match.Requirement.WorkingDays,
				IntroducedDays:  match.IntroducedDays,
				Completed:       match.Completed,
				RealizationIDs:  match.RealizationIDs,
			})
		}
		out = append(out, view)
	}
	return out, nil
}

func moduleStatistics(m *domain.Module) progress.SpecializationStatistics {
	return progress.SpecializationStatistics{
		Internships:         progress.CategoryProgress{Completed: m.CompletedInternships, Required: m.TotalInternships},
		Courses:             progress.CategoryProgress{Completed: m.CompletedCourses, Required: m.TotalCourses},
		ShiftHours:          progress.ShiftHoursProgress{Completed: m.CompletedShiftHours, Required: m.RequiredShiftHours},
		ProceduresOperator:  progress.CategoryProgress{Completed: m.CompletedProceduresA, Required: m.TotalProceduresA},
		ProceduresAssistant: progress.CategoryProgress{Completed: m.CompletedProceduresB, Required: m.TotalProceduresB},
	}
}

func sumInts(p *catalogue.Program, pick func(catalogue.ModuleRequirements) int) int {
	var n int
	for _, m := range p.Modules {
		n += pick(m)
	}
	return n
}
