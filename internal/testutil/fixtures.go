package testutil

import (
	"time"

	"github.com/adamwrona/rezydent/internal/domain"
	"github.com/google/uuid"
)

// Specialization options
type SpecializationOption func(*domain.Specialization)

func WithSMKVersion(v domain.SMKVersion) SpecializationOption {
	return func(s *domain.Specialization) {
		s.SMKVersion = v
	}
}

func WithProgramCode(code string) SpecializationOption {
	return func(s *domain.Specialization) {
		s.ProgramCode = code
	}
}

func WithCurrentModule(moduleID string) SpecializationOption {
	return func(s *domain.Specialization) {
		s.CurrentModuleID = moduleID
	}
}

func NewTestSpecialization(name string, opts ...SpecializationOption) *domain.Specialization {
	now := time.Now().UTC()
	s := &domain.Specialization{
		ID:          uuid.New().String(),
		Name:        name,
		ProgramCode: "cardiology",
		SMKVersion:  domain.SMKOld,
		StartDate:   now.AddDate(-1, 0, 0),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Module options
type ModuleOption func(*domain.Module)

func WithModuleType(t domain.ModuleType) ModuleOption {
	return func(m *domain.Module) {
		m.Type = t
	}
}

func WithModuleID(id string) ModuleOption {
	return func(m *domain.Module) {
		m.ID = id
	}
}

func WithOrderIndex(i int) ModuleOption {
	return func(m *domain.Module) {
		m.OrderIndex = i
	}
}

func NewTestModule(specializationID, name string, opts ...ModuleOption) *domain.Module {
	now := time.Now().UTC()
	m := &domain.Module{
		ID:               uuid.New().String(),
		SpecializationID: specializationID,
		Name:             name,
		Type:             domain.ModuleSpecialistic,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// MedicalShift options
type ShiftOption func(*domain.MedicalShift)

func WithShiftYear(year int) ShiftOption {
	return func(s *domain.MedicalShift) {
		s.Year = year
	}
}

func WithShiftDuration(hours, minutes int) ShiftOption {
	return func(s *domain.MedicalShift) {
		s.Hours = hours
		s.Minutes = minutes
	}
}

func WithShiftDate(d time.Time) ShiftOption {
	return func(s *domain.MedicalShift) {
		s.Version = domain.SMKNew
		s.Date = &d
	}
}

func WithShiftSyncStatus(st domain.SyncStatus) ShiftOption {
	return func(s *domain.MedicalShift) {
		s.SyncStatus = st
	}
}

func WithShiftApproved() ShiftOption {
	return func(s *domain.MedicalShift) {
		s.IsApproved = true
	}
}

func NewTestShift(specializationID, moduleID string, opts ...ShiftOption) *domain.MedicalShift {
	now := time.Now().UTC()
	s := &domain.MedicalShift{
		ID:               uuid.New().String(),
		SpecializationID: specializationID,
		ModuleID:         moduleID,
		Version:          domain.SMKOld,
		Year:             1,
		Location:         "Oddział kardiologii",
		Hours:            10,
		Minutes:          5,
		SyncStatus:       domain.SyncNotSynced,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Internship options
type InternshipOption func(*domain.Internship)

func WithInternshipName(name string) InternshipOption {
	return func(i *domain.Internship) {
		i.Name = name
	}
}

func WithInternshipYear(year int) InternshipOption {
	return func(i *domain.Internship) {
		i.Year = year
	}
}

func WithInternshipDays(days int) InternshipOption {
	return func(i *domain.Internship) {
		i.DaysCount = days
	}
}

func WithInternshipRequirement(reqID string) InternshipOption {
	return func(i *domain.Internship) {
		i.Version = domain.SMKNew
		i.RequirementID = reqID
	}
}

func WithInternshipSyncStatus(st domain.SyncStatus) InternshipOption {
	return func(i *domain.Internship) {
		i.SyncStatus = st
	}
}

func NewTestInternship(specializationID, moduleID string, opts ...InternshipOption) *domain.Internship {
	now := time.Now().UTC()
	i := &domain.Internship{
		ID:               uuid.New().String(),
		SpecializationID: specializationID,
		ModuleID:         moduleID,
		Version:          domain.SMKOld,
		Year:             1,
		Name:             "Staż podstawowy",
		Institution:      "Szpital wojewódzki",
		DaysCount:        10,
		SyncStatus:       domain.SyncNotSynced,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Procedure options
type ProcedureOption func(*domain.Procedure)

func WithProcedureCode(code string) ProcedureOption {
	return func(p *domain.Procedure) {
		p.Code = code
	}
}

func WithProcedureRole(r domain.ProcedureRole) ProcedureOption {
	return func(p *domain.Procedure) {
		p.Role = r
	}
}

func WithProcedureCounts(operator, assistant int) ProcedureOption {
	return func(p *domain.Procedure) {
		p.Version = domain.SMKNew
		p.CountOperator = operator
		p.CountAssistant = assistant
	}
}

func WithProcedureRequirement(reqID string) ProcedureOption {
	return func(p *domain.Procedure) {
		p.Version = domain.SMKNew
		p.RequirementID = reqID
	}
}

func NewTestProcedure(specializationID, moduleID string, opts ...ProcedureOption) *domain.Procedure {
	now := time.Now().UTC()
	p := &domain.Procedure{
		ID:               uuid.New().String(),
		SpecializationID: specializationID,
		ModuleID:         moduleID,
		Version:          domain.SMKOld,
		Year:             1,
		Code:             "ECHO",
		Role:             domain.RoleOperator,
		SyncStatus:       domain.SyncNotSynced,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func NewTestCourse(specializationID, moduleID, name string) *domain.Course {
	now := time.Now().UTC()
	return &domain.Course{
		ID:               uuid.New().String(),
		SpecializationID: specializationID,
		ModuleID:         moduleID,
		Version:          domain.SMKOld,
		Year:             1,
		Name:             name,
		SyncStatus:       domain.SyncNotSynced,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func NewTestActivity(specializationID, moduleID string, kind domain.ActivityKind, title string) *domain.Activity {
	now := time.Now().UTC()
	return &domain.Activity{
		ID:               uuid.New().String(),
		SpecializationID: specializationID,
		ModuleID:         moduleID,
		Kind:             kind,
		Year:             1,
		Title:            title,
		SyncStatus:       domain.SyncNotSynced,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
