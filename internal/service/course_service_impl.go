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

type courseService struct {
	courses repository.CourseRepo
	specs   repository.SpecializationRepo
	source  catalogue.Source
	uow     db.UnitOfWork
	cache   *StatsCache
	obs     UseCaseObserver
}

func NewCourseService(courses repository.CourseRepo, specs repository.SpecializationRepo, source catalogue.Source, uow db.UnitOfWork, cache *StatsCache, observers ...UseCaseObserver) CourseService {
	return &courseService{
		courses: courses,
		specs:   specs,
		source:  source,
		uow:     uow,
		cache:   cache,
		obs:     useCaseObserverOrNoop(observers),
	}
}

func (s *courseService) Add(ctx context.Context, course *domain.Course) (contract.Result, error) {
	start := time.Now()

	spec, err := s.specs.GetByID(ctx, course.SpecializationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("specjalizacja"), nil
		}
		return contract.Result{}, err
	}

	course.Version = spec.SMKVersion
	if course.ModuleID == "" {
		course.ModuleID = spec.CurrentModuleID
	}

	program, err := loadProgram(s.source, spec)
	if err != nil {
		return contract.Result{}, err
	}
	res := validateCourse(smk.ForVersion(spec.SMKVersion), course, programYears(program))
	if !res.OK() {
		return res, nil
	}

	now := time.Now().UTC()
	if course.ID == "" {
		course.ID = uuid.New().String()
	}
	course.SyncStatus = domain.SyncNotSynced
	course.CreatedAt = now
	course.UpdatedAt = now

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteCourseRepo(tx).Create(ctx, course); err != nil {
			return err
		}
		return recomputeModuleCounters(ctx, tx, s.source, spec, now)
	})
	emit(ctx, s.obs, "course.add", start, err, map[string]any{"course_id": course.ID})
	if err != nil {
		return contract.Result{}, err
	}
	s.cache.Invalidate(spec.ID)
	return contract.Result{}, nil
}

func (s *courseService) ListBySpecialization(ctx context.Context, specializationID string) ([]*domain.Course, error) {
	return s.courses.ListBySpecialization(ctx, specializationID)
}

func (s *courseService) Delete(ctx context.Context, id string) (contract.Result, error) {
	start := time.Now()

	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("kurs"), nil
		}
		return contract.Result{}, err
	}
	if !course.Deletable() {
		return conflict("Kurs zsynchronizowany lub zatwierdzony nie może zostać usunięty"), nil
	}
	spec, err := s.specs.GetByID(ctx, course.SpecializationID)
	if err != nil {
		return contract.Result{}, err
	}

	now := time.Now().UTC()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteCourseRepo(tx).Delete(ctx, id); err != nil {
			return err
		}
		return recomputeModuleCounters(ctx, tx, s.source, spec, now)
	})
	emit(ctx, s.obs, "course.delete", start, err, map[string]any{"course_id": id})
	if err != nil {
		return contract.Result{}, err
	}
	s.cache.Invalidate(spec.ID)
	return contract.Result{}, nil
}

func (s *courseService) MarkSynced(ctx context.Context, id string) error {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return err
	}
	course.MarkSynced(time.Now().UTC())
	return s.courses.Update(ctx, course)
}
