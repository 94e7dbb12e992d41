package repository

import (
	"context"
	"errors"

	"github.com/adamwrona/rezydent/internal/domain"
)

// ErrNotFound is the sentinel wrapped by every repository when a referenced
// record is absent.
var ErrNotFound = errors.New("not found")

type SpecializationRepo interface {
	Create(ctx context.Context, s *domain.Specialization) error
	GetByID(ctx context.Context, id string) (*domain.Specialization, error)
	List(ctx context.Context) ([]*domain.Specialization, error)
	Update(ctx context.Context, s *domain.Specialization) error
	Delete(ctx context.Context, id string) error
}

type ModuleRepo interface {
	Create(ctx context.Context, m *domain.Module) error
	GetByID(ctx context.Context, id string) (*domain.Module, error)
	ListBySpecialization(ctx context.Context, specializationID string) ([]*domain.Module, error)
	Update(ctx context.Context, m *domain.Module) error
}

type ShiftRepo interface {
	Create(ctx context.Context, s *domain.MedicalShift) error
	GetByID(ctx context.Context, id string) (*domain.MedicalShift, error)
	ListBySpecialization(ctx context.Context, specializationID string) ([]*domain.MedicalShift, error)
	ListByModule(ctx context.Context, moduleID string) ([]*domain.MedicalShift, error)
	ListByYear(ctx context.Context, specializationID string, year int) ([]*domain.MedicalShift, error)
	Update(ctx context.Context, s *domain.MedicalShift) error
	Delete(ctx context.Context, id string) error
}

type InternshipRepo interface {
	Create(ctx context.Context, i *domain.Internship) error
	GetByID(ctx context.Context, id string) (*domain.Internship, error)
	ListBySpecialization(ctx context.Context, specializationID string) ([]*domain.Internship, error)
	ListByModule(ctx context.Context, moduleID string) ([]*domain.Internship, error)
	Update(ctx context.Context, i *domain.Internship) error
	Delete(ctx context.Context, id string) error
}

type ProcedureRepo interface {
	Create(ctx context.Context, p *domain.Procedure) error
	GetByID(ctx context.Context, id string) (*domain.Procedure, error)
	ListBySpecialization(ctx context.Context, specializationID string) ([]*domain.Procedure, error)
	ListByModule(ctx context.Context, moduleID string) ([]*domain.Procedure, error)
	Update(ctx context.Context, p *domain.Procedure) error
	Delete(ctx context.Context, id string) error
}

type CourseRepo interface {
	Create(ctx context.Context, c *domain.Course) error
	GetByID(ctx context.Context, id string) (*domain.Course, error)
	ListBySpecialization(ctx context.Context, specializationID string) ([]*domain.Course, error)
	ListByModule(ctx context.Context, moduleID string) ([]*domain.Course, error)
	Update(ctx context.Context, c *domain.Course) error
	Delete(ctx context.Context, id string) error
}

type ActivityRepo interface {
	Create(ctx context.Context, a *domain.Activity) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	ListBySpecialization(ctx context.Context, specializationID string) ([]*domain.Activity, error)
	CountByKind(ctx context.Context, specializationID string) (map[domain.ActivityKind]int, error)
	Delete(ctx context.Context, id string) error
}
