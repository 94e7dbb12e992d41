package contract

import (
	"time"

	"github.com/adamwrona/rezydent/internal/progress"
)

// StatisticsResponse is the progress snapshot for one specialization,
// aggregated across all of its modules.
type StatisticsResponse struct {
	SpecializationID string
	GeneratedAt      time.Time
	Statistics       progress.SpecializationStatistics
	Modules          []ModuleStatistics
}

// ModuleStatistics is the per-module slice of the snapshot.
type ModuleStatistics struct {
	ModuleID   string
	ModuleName string
	Statistics progress.SpecializationStatistics
}

// MatchedInternship is one internship requirement paired with the
// realizations attributed to it.
type MatchedInternship struct {
	RequirementID   string
	RequirementName string
	RequiredDays    int
	IntroducedDays  int
	Completed       bool
	RealizationIDs  []string
}

// ModuleInternships groups matched internships by module.
type ModuleInternships struct {
	ModuleID   string
	ModuleName string
	Matches    []MatchedInternship
}
