package service

import (
	"context"
	"errors"
	"time"

	"github.com/adamwrona/rezydent/internal/catalogue"
	"github.com/adamwrona/rezydent/internal/contract"
	"github.com/adamwrona/rezydent/internal/db"
	"github.com/adamwrona/rezydent/internal/domain"
	"github.com/adamwrona/rezydent/internal/repository"
	"github.com/adamwrona/rezydent/internal/smk"
	"github.com/google/uuid"
)

type internshipService struct {
	internships repository.InternshipRepo
	specs       repository.SpecializationRepo
	source      catalogue.Source
	uow         db.UnitOfWork
	cache       *StatsCache
	obs         UseCaseObserver
}

func NewInternshipService(internships repository.InternshipRepo, specs repository.SpecializationRepo, source catalogue.Source, uow db.UnitOfWork, cache *StatsCache, observers ...UseCaseObserver) InternshipService {
	return &internshipService{
		internships: internships,
		specs:       specs,
		source:      source,
		uow:         uow,
		cache:       cache,
		obs:         useCaseObserverOrNoop(observers),
	}
}

func (s *internshipService) Add(ctx context.Context, internship *domain.Internship) (contract.Result, error) {
	start := time.Now()

	spec, err := s.specs.GetByID(ctx, internship.SpecializationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("specjalizacja"), nil
		}
		return contract.Result{}, err
	}

	internship.Version = spec.SMKVersion
	if internship.ModuleID == "" {
		internship.ModuleID = spec.CurrentModuleID
	}

	program, err := loadProgram(s.source, spec)
	if err != nil {
		return contract.Result{}, err
	}
	res := validateInternship(smk.ForVersion(spec.SMKVersion), internship, programYears(program))
	if !res.OK() {
		return res, nil
	}

	now := time.Now().UTC()
	if internship.ID == "" {
		internship.ID = uuid.New().String()
	}
	internship.SyncStatus = domain.SyncNotSynced
	internship.CreatedAt = now
	internship.UpdatedAt = now

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteInternshipRepo(tx).Create(ctx, internship); err != nil {
			return err
		}
		return recomputeModuleCounters(ctx, tx, s.source, spec, now)
	})
	emit(ctx, s.obs, "internship.add", start, err, map[string]any{"internship_id": internship.ID})
	if err != nil {
		return contract.Result{}, err
	}
	s.cache.Invalidate(spec.ID)
	return contract.Result{}, nil
}

func (s *internshipService) GetByID(ctx context.Context, id string) (*domain.Internship, error) {
	return s.internships.GetByID(ctx, id)
}

func (s *internshipService) ListBySpecialization(ctx context.Context, specializationID string) ([]*domain.Internship, error) {
	return s.internships.ListBySpecialization(ctx, specializationID)
}

func (s *internshipService) Update(ctx context.Context, id, name, institution string, daysCount, year int) (contract.Result, error) {
	start := time.Now()

	internship, err := s.internships.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("staż"), nil
		}
		return contract.Result{}, err
	}
	spec, err := s.specs.GetByID(ctx, internship.SpecializationID)
	if err != nil {
		return contract.Result{}, err
	}
	program, err := loadProgram(s.source, spec)
	if err != nil {
		return contract.Result{}, err
	}

	now := time.Now().UTC()
	edited := *internship
	if err := edited.ApplyEdit(name, institution, daysCount, year, now); err != nil {
		return conflict(err.Error()), nil
	}
	res := validateInternship(smk.ForVersion(spec.SMKVersion), &edited, programYears(program))
	if !res.OK() {
		return res, nil
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteInternshipRepo(tx).Update(ctx, &edited); err != nil {
			return err
		}
		return recomputeModuleCounters(ctx, tx, s.source, spec, now)
	})
	emit(ctx, s.obs, "internship.update", start, err, map[string]any{"internship_id": id})
	if err != nil {
		return contract.Result{}, err
	}
	s.cache.Invalidate(spec.ID)
	return contract.Result{}, nil
}

func (s *internshipService) Delete(ctx context.Context, id string) (contract.Result, error) {
	start := time.Now()

	internship, err := s.internships.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("staż"), nil
		}
		return contract.Result{}, err
	}
	if !internship.Deletable() {
		return conflict("Staż zsynchronizowany lub zatwierdzony nie może zostać usunięty"), nil
	}
	spec, err := s.specs.GetByID(ctx, internship.SpecializationID)
	if err != nil {
		return contract.Result{}, err
	}

	now := time.Now().UTC()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteInternshipRepo(tx).Delete(ctx, id); err != nil {
			return err
		}
		return recomputeModuleCounters(ctx, tx, s.source, spec, now)
	})
	emit(ctx, s.obs, "internship.delete", start, err, map[string]any{"internship_id": id})
	if err != nil {
		return contract.Result{}, err
	}
	s.cache.Invalidate(spec.ID)
	return contract.Result{}, nil
}

func (s *internshipService) MarkSynced(ctx context.Context, id string) error {
	internship, err := s.internships.GetByID(ctx, id)
	if err != nil {
		return err
	}
	internship.MarkSynced(time.Now().UTC())
	return s.internships.Update(ctx, internship)
}

func (s *internshipService) MarkSyncFailed(ctx context.Context, id string) error {
	internship, err := s.internships.GetByID(ctx, id)
	if err != nil {
		return err
	}
	internship.MarkSyncFailed(time.Now().UTC())
	return s.internships.Update(ctx, internship)
}
