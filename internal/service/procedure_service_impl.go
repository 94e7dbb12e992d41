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

type procedureService struct {
	procedures repository.ProcedureRepo
	specs      repository.SpecializationRepo
	source     catalogue.Source
	uow        db.UnitOfWork
	cache      *StatsCache
	obs        UseCaseObserver
}

func NewProcedureService(procedures repository.ProcedureRepo, specs repository.SpecializationRepo, source catalogue.Source, uow db.UnitOfWork, cache *StatsCache, observers ...UseCaseObserver) ProcedureService {
	return &procedureService{
		procedures: procedures,
		specs:      specs,
		source:     source,
		uow:        uow,
		cache:      cache,
		obs:        useCaseObserverOrNoop(observers),
	}
}

func (s *procedureService) Add(ctx context.Context, procedure *domain.Procedure) (contract.Result, error) {
	start := time.Now()

	spec, err := s.specs.GetByID(ctx, procedure.SpecializationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("specjalizacja"), nil
		}
		return contract.Result{}, err
	}

	procedure.Version = spec.SMKVersion
	if procedure.ModuleID == "" {
		procedure.ModuleID = spec.CurrentModuleID
	}

	program, err := loadProgram(s.source, spec)
	if err != nil {
		return contract.Result{}, err
	}
	res := validateProcedure(smk.ForVersion(spec.SMKVersion), procedure, programYears(program))
	if !res.OK() {
		return res, nil
	}

	now := time.Now().UTC()
	if procedure.ID == "" {
		procedure.ID = uuid.New().String()
	}
	procedure.SyncStatus = domain.SyncNotSynced
	procedure.CreatedAt = now
	procedure.UpdatedAt = now

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteProcedureRepo(tx).Create(ctx, procedure); err != nil {
			return err
		}
		return recomputeModuleCounters(ctx, tx, s.source, spec, now)
	})
	emit(ctx, s.obs, "procedure.add", start, err, map[string]any{"procedure_id": procedure.ID})
	if err != nil {
		return contract.Result{}, err
	}
	s.cache.Invalidate(spec.ID)
	return contract.Result{}, nil
}

func (s *procedureService) GetByID(ctx context.Context, id string) (*domain.Procedure, error) {
	return s.procedures.GetByID(ctx, id)
}

func (s *procedureService) ListBySpecialization(ctx context.Context, specializationID string) ([]*domain.Procedure, error) {
	return s.procedures.ListBySpecialization(ctx, specializationID)
}

func (s *procedureService) Update(ctx context.Context, id string, year, countOperator, countAssistant int, performingPerson, location string) (contract.Result, error) {
	start := time.Now()

	procedure, err := s.procedures.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("procedura"), nil
		}
		return contract.Result{}, err
	}
	spec, err := s.specs.GetByID(ctx, procedure.SpecializationID)
	if err != nil {
		return contract.Result{}, err
	}
	program, err := loadProgram(s.source, spec)
	if err != nil {
		return contract.Result{}, err
	}

	now := time.Now().UTC()
	edited := *procedure
	if err := edited.ApplyEdit(year, countOperator, countAssistant, performingPerson, location, now); err != nil {
		return conflict(err.Error()), nil
	}
	res := validateProcedure(smk.ForVersion(spec.SMKVersion), &edited, programYears(program))
	if !res.OK() {
		return res, nil
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteProcedureRepo(tx).Update(ctx, &edited); err != nil {
			return err
		}
		return recomputeModuleCounters(ctx, tx, s.source, spec, now)
	})
	emit(ctx, s.obs, "procedure.update", start, err, map[string]any{"procedure_id": id})
	if err != nil {
		return contract.Result{}, err
	}
	s.cache.Invalidate(spec.ID)
	return contract.Result{}, nil
}

func (s *procedureService) Delete(ctx context.Context, id string) (contract.Result, error) {
	start := time.Now()

	procedure, err := s.procedures.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("procedura"), nil
		}
		return contract.Result{}, err
	}
	if !procedure.Deletable() {
		return conflict("Procedura zsynchronizowana lub zatwierdzona nie może zostać usunięta"), nil
	}
	spec, err := s.specs.GetByID(ctx, procedure.SpecializationID)
	if err != nil {
		return contract.Result{}, err
	}

	now := time.Now().UTC()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteProcedureRepo(tx).Delete(ctx, id); err != nil {
			return err
		}
		return recomputeModuleCounters(ctx, tx, s.source, spec, now)
	})
	emit(ctx, s.obs, "procedure.delete", start, err, map[string]any{"procedure_id": id})
	if err != nil {
		return contract.Result{}, err
	}
	s.cache.Invalidate(spec.ID)
	return contract.Result{}, nil
}

func (s *procedureService) MarkSynced(ctx context.Context, id string) error {
	procedure, err := s.procedures.GetByID(ctx, id)
	if err != nil {
		return err
	}
	procedure.MarkSynced(time.Now().UTC())
	return s.procedures.Update(ctx, procedure)
}

func (s *procedureService) MarkSyncFailed(ctx context.Context, id string) error {
	procedure, err := s.procedures.GetByID(ctx, id)
	if err != nil {
		return err
	}
	procedure.MarkSyncFailed(time.Now().UTC())
	return s.procedures.Update(ctx, procedure)
}
