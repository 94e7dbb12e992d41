package service

import (
	"context"
	"errors"
	"time"

	"github.com/adamwrona/rezydent/internal/contract"
	"github.com/adamwrona/rezydent/internal/db"
	"github.com/adamwrona/rezydent/internal/domain"
	"github.com/adamwrona/rezydent/internal/repository"
	"github.com/google/uuid"
)

type activityService struct {
	activities repository.ActivityRepo
	specs      repository.SpecializationRepo
	uow        db.UnitOfWork
	cache      *StatsCache
	obs        UseCaseObserver
}

// NewActivityService builds the service for the non-weighted "other"
// activities. They carry no catalogue requirements of their own, so no
// counter recomputation is involved, only cache invalidation.
func NewActivityService(activities repository.ActivityRepo, specs repository.SpecializationRepo, uow db.UnitOfWork, cache *StatsCache, observers ...UseCaseObserver) ActivityService {
	return &activityService{
		activities: activities,
		specs:      specs,
		uow:        uow,
		cache:      cache,
		obs:        useCaseObserverOrNoop(observers),
	}
}

func (s *activityService) Add(ctx context.Context, activity *domain.Activity) (contract.Result, error) {
	start := time.Now()

	spec, err := s.specs.GetByID(ctx, activity.SpecializationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("specjalizacja"), nil
		}
		return contract.Result{}, err
	}
	if activity.ModuleID == "" {
		activity.ModuleID = spec.CurrentModuleID
	}

	res := validateActivity(activity)
	if !res.OK() {
		return res, nil
	}

	now := time.Now().UTC()
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}
	activity.SyncStatus = domain.SyncNotSynced
	activity.CreatedAt = now
	activity.UpdatedAt = now

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteActivityRepo(tx).Create(ctx, activity)
	})
	emit(ctx, s.obs, "activity.add", start, err, map[string]any{"activity_id": activity.ID})
	if err != nil {
		return contract.Result{}, err
	}
	s.cache.Invalidate(spec.ID)
	return contract.Result{}, nil
}

func (s *activityService) ListBySpecialization(ctx context.Context, specializationID string) ([]*domain.Activity, error) {
	return s.activities.ListBySpecialization(ctx, specializationID)
}

func (s *activityService) Delete(ctx context.Context, id string) (contract.Result, error) {
	start := time.Now()

	activity, err := s.activities.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("aktywność"), nil
		}
		return contract.Result{}, err
	}
	if !activity.Deletable() {
		return conflict("Aktywność zsynchronizowana nie może zostać usunięta"), nil
	}

	err = s.activities.Delete(ctx, id)
	emit(ctx, s.obs, "activity.delete", start, err, map[string]any{"activity_id": id})
	if err != nil {
		return contract.Result{}, err
	}
	s.cache.Invalidate(activity.SpecializationID)
	return contract.Result{}, nil
}
