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

type shiftService struct {
	shifts      repository.ShiftRepo
	internships repository.InternshipRepo
	specs       repository.SpecializationRepo
	source      catalogue.Source
	uow         db.UnitOfWork
	cache       *StatsCache
	obs         UseCaseObserver
}

func NewShiftService(shifts repository.ShiftRepo, internships repository.InternshipRepo, specs repository.SpecializationRepo, source catalogue.Source, uow db.UnitOfWork, cache *StatsCache, observers ...UseCaseObserver) ShiftService {
	return &shiftService{
		shifts:      shifts,
		internships: internships,
		specs:       specs,
		source:      source,
		uow:         uow,
		cache:       cache,
		obs:         useCaseObserverOrNoop(observers),
	}
}

func (s *shiftService) Add(ctx context.Context, shift *domain.MedicalShift) (contract.Result, error) {
	start := time.Now()

	spec, err := s.specs.GetByID(ctx, shift.SpecializationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("specjalizacja"), nil
		}
		return contract.Result{}, err
	}

	shift.Version = spec.SMKVersion
	if shift.ModuleID == "" {
		shift.ModuleID = spec.CurrentModuleID
	}

	program, err := loadProgram(s.source, spec)
	if err != nil {
		return contract.Result{}, err
	}

	var linked *domain.Internship
	if spec.SMKVersion == domain.SMKNew && shift.InternshipReq != "" {
		linked, err = s.internships.GetByID(ctx, shift.InternshipReq)
		if err != nil {
			if !errors.Is(err, repository.ErrNotFound) {
				return contract.Result{}, err
			}
			return contract.Fail(contract.FailureValidation, "internship_req", "Wskazany staż kierunkowy nie istnieje"), nil
		}
	}

	res := validateShift(smk.ForVersion(spec.SMKVersion), shift, linked, programYears(program))
	if !res.OK() {
		return res, nil
	}

	now := time.Now().UTC()
	if shift.ID == "" {
		shift.ID = uuid.New().String()
	}
	shift.SyncStatus = domain.SyncNotSynced
	shift.CreatedAt = now
	shift.UpdatedAt = now

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteShiftRepo(tx).Create(ctx, shift); err != nil {
			return err
		}
		return recomputeModuleCounters(ctx, tx, s.source, spec, now)
	})
	emit(ctx, s.obs, "shift.add", start, err, map[string]any{"shift_id": shift.ID})
	if err != nil {
		return contract.Result{}, err
	}
	s.cache.Invalidate(spec.ID)
	return contract.Result{}, nil
}

func (s *shiftService) GetByID(ctx context.Context, id string) (*domain.MedicalShift, error) {
	return s.shifts.GetByID(ctx, id)
}

func (s *shiftService) ListBySpecialization(ctx context.Context, specializationID string) ([]*domain.MedicalShift, error) {
	return s.shifts.ListBySpecialization(ctx, specializationID)
}

// Update edits a persisted shift. The shift date is not among the editable
// fields: changing it means delete and recreate.
func (s *shiftService) Update(ctx context.Context, id string, hours, minutes, year int, location string) (contract.Result, error) {
	start := time.Now()

	shift, err := s.shifts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("dyżur"), nil
		}
		return contract.Result{}, err
	}
	spec, err := s.specs.GetByID(ctx, shift.SpecializationID)
	if err != nil {
		return contract.Result{}, err
	}
	program, err := loadProgram(s.source, spec)
	if err != nil {
		return contract.Result{}, err
	}

	now := time.Now().UTC()
	edited := *shift
	if err := edited.ApplyEdit(hours, minutes, year, location, now); err != nil {
		return conflict(err.Error()), nil
	}
	res := validateShift(smk.ForVersion(spec.SMKVersion), &edited, nil, programYears(program))
	if !res.OK() {
		return res, nil
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteShiftRepo(tx).Update(ctx, &edited); err != nil {
			return err
		}
		return recomputeModuleCounters(ctx, tx, s.source, spec, now)
	})
	emit(ctx, s.obs, "shift.update", start, err, map[string]any{"shift_id": id})
	if err != nil {
		return contract.Result{}, err
	}
	s.cache.Invalidate(spec.ID)
	return contract.Result{}, nil
}

func (s *shiftService) Delete(ctx context.Context, id string) (contract.Result, error) {
	start := time.Now()

	shift, err := s.shifts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("dyżur"), nil
		}
		return contract.Result{}, err
	}
	if !shift.Deletable() {
		return conflict("Dyżur zsynchronizowany lub zatwierdzony nie może zostać usunięty"), nil
	}
	spec, err := s.specs.GetByID(ctx, shift.SpecializationID)
	if err != nil {
		return contract.Result{}, err
	}

	now := time.Now().UTC()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteShiftRepo(tx).Delete(ctx, id); err != nil {
			return err
		}
		return recomputeModuleCounters(ctx, tx, s.source, spec, now)
	})
	emit(ctx, s.obs, "shift.delete", start, err, map[string]any{"shift_id": id})
	if err != nil {
		return contract.Result{}, err
	}
	s.cache.Invalidate(spec.ID)
	return contract.Result{}, nil
}

func (s *shiftService) MarkSynced(ctx context.Context, id string) error {
	shift, err := s.shifts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	shift.MarkSynced(time.Now().UTC())
	return s.shifts.Update(ctx, shift)
}

func (s *shiftService) MarkSyncFailed(ctx context.Context, id string) error {
	shift, err := s.shifts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	shift.MarkSyncFailed(time.Now().UTC())
	return s.shifts.Update(ctx, shift)
}
