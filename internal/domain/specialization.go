package domain

import (
	"fmt"
	"time"
)

// Specialization is the root aggregate: one training program in progress for
// one trainee, pinned to a single SMK schema generation for its lifetime.
type Specialization struct {
	ID              string
	Name            string
	ProgramCode     string
	SMKVersion      SMKVersion
	StartDate       time.Time
	PlannedEndDate  *time.Time
	CurrentModuleID string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SetCurrentModule moves the "current module" pointer. Exactly one module is
// current at a time; data entry never changes it implicitly.
func (s *Specialization) SetCurrentModule(moduleID string, now time.Time) error {
	if moduleID == "" {
		return fmt.Errorf("module ID is required")
	}
	s.CurrentModuleID = moduleID
	s.UpdatedAt = now
	return nil
}

// YearRange returns the inclusive training-year range covered by a module of
// the given type. When the program has a basic module, basic covers years 1-2
// and specialistic 3-6; a program without a basic module starts its
// specialistic module at year 1.
func YearRange(t ModuleType, hasBasicModule bool) (lo, hi int) {
	if t == ModuleBasic {
		return 1, 2
	}
	if hasBasicModule {
		return 3, 6
	}
	return 1, 6
}

// Module is a named phase of the specialization (basic or specialistic).
// The counters are derived state, recomputed from realizations after every
// mutation; they are never the source of truth.
type Module struct {
	ID               string
	SpecializationID string
	Name             string
	Type             ModuleType
	OrderIndex       int

	CompletedInternships int
	TotalInternships     int
	CompletedCourses     int
	TotalCourses         int
	CompletedProceduresA int
	TotalProceduresA     int
	CompletedProceduresB int
	TotalProceduresB     int
	CompletedShiftHours  float64
	RequiredShiftHours   float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
