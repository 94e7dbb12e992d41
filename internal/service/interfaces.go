package service

import (
	"context"
	"time"

	"github.com/adamwrona/rezydent/internal/contract"
	"github.com/adamwrona/rezydent/internal/domain"
)

// Mutating operations return a contract.Result carrying business rule
// failures; the error return is reserved for infrastructure problems.

type SpecializationService interface {
	Create(ctx context.Context, name, programCode string, version domain.SMKVersion, startDate time.Time) (*domain.Specialization, contract.Result, error)
	GetByID(ctx context.Context, id string) (*domain.Specialization, error)
	List(ctx context.Context) ([]*domain.Specialization, error)
	Modules(ctx context.Context, specializationID string) ([]*domain.Module, error)
	SetCurrentModule(ctx context.Context, specializationID, moduleID string) (contract.Result, error)
	GetStatistics(ctx context.Context, specializationID string) (*contract.StatisticsResponse, error)
	GetMatchedInternships(ctx context.Context, specializationID string) ([]contract.ModuleInternships, error)
}

type ShiftService interface {
	Add(ctx context.Context, s *domain.MedicalShift) (contract.Result, error)
	GetByID(ctx context.Context, id string) (*domain.MedicalShift, error)
	ListBySpecialization(ctx context.Context, specializationID string) ([]*domain.MedicalShift, error)
	Update(ctx context.Context, id string, hours, minutes, year int, location string) (contract.Result, error)
	Delete(ctx context.Context, id string) (contract.Result, error)
	MarkSynced(ctx context.Context, id string) error
	MarkSyncFailed(ctx context.Context, id string) error
}

type InternshipService interface {
	Add(ctx context.Context, i *domain.Internship) (contract.Result, error)
	GetByID(ctx context.Context, id string) (*domain.Internship, error)
	ListBySpecialization(ctx context.Context, specializationID string) ([]*domain.Internship, error)
	Update(ctx context.Context, id, name, institution string, daysCount, year int) (contract.Result, error)
	Delete(ctx context.Context, id string) (contract.Result, error)
	MarkSynced(ctx context.Context, id string) error
	MarkSyncFailed(ctx context.Context, id string) error
}

type ProcedureService interface {
	Add(ctx context.Context, p *domain.Procedure) (contract.Result, error)
	GetByID(ctx context.Context, id string) (*domain.Procedure, error)
	ListBySpecialization(ctx context.Context, specializationID string) ([]*domain.Procedure, error)
	Update(ctx context.Context, id string, year, countOperator, countAssistant int, performingPerson, location string) (contract.Result, error)
	Delete(ctx context.Context, id string) (contract.Result, error)
	MarkSynced(ctx context.Context, id string) error
	MarkSyncFailed(ctx context.Context, id string) error
}

type CourseService interface {
	Add(ctx context.Context, c *domain.Course) (contract.Result, error)
	ListBySpecialization(ctx context.Context, specializationID string) ([]*domain.Course, error)
	Delete(ctx context.Context, id string) (contract.Result, error)
	MarkSynced(ctx context.Context, id string) error
}

type ActivityService interface {
	Add(ctx context.Context, a *domain.Activity) (contract.Result, error)
	ListBySpecialization(ctx context.Context, specializationID string) ([]*domain.Activity, error)
	Delete(ctx context.Context, id string) (contract.Result, error)
}
