package domain

import (
	"fmt"
	"time"
)

// Procedure is a logged medical procedure. Old-generation records describe a
// single performance with a one-letter role code; new-generation records
// reference the requirement directly and carry explicit operator/assistant
// counts.
type Procedure struct {
	ID               string
	SpecializationID string
	ModuleID         string
	Version          SMKVersion

	// Old generation
	Year             int
	Code             string
	Role             ProcedureRole
	PerformingPerson string
	Location         string
	Date             *time.Time

	// New generation
	RequirementID string
	CountOperator int
	CountAssistant int

	SyncStatus SyncStatus
	IsApproved bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OperatorCount returns how many operator performances this record
// represents, across both generations.
func (p *Procedure) OperatorCount() int {
	if p.Version == SMKNew {
		return p.CountOperator
	}
	if p.Role == RoleOperator {
		return 1
	}
	return 0
}

// AssistantCount returns how many assistant performances this record
// represents, across both generations.
func (p *Procedure) AssistantCount() int {
	if p.Version == SMKNew {
		return p.CountAssistant
	}
	if p.Role == RoleAssistant {
		return 1
	}
	return 0
}

// Deletable reports whether the procedure may still be removed.
func (p *Procedure) Deletable() bool {
	return p.SyncStatus != SyncSynced && !p.IsApproved
}

// ApplyEdit updates the mutable fields of a persisted procedure.
func (p *Procedure) ApplyEdit(year, countOperator, countAssistant int, performingPerson, location string, now time.Time) error {
	if p.IsApproved {
		return fmt.Errorf("procedure is approved and can no longer be edited")
	}
	if countOperator < 0 || countAssistant < 0 {
		return fmt.Errorf("counts must not be negative")
	}
	p.Year = year
	p.CountOperator = countOperator
	p.CountAssistant = countAssistant
	p.PerformingPerson = performingPerson
	p.Location = location
	p.touch(now)
	return nil
}

// MarkSynced records a successful push to SMK.
func (p *Procedure) MarkSynced(now time.Time) {
	p.SyncStatus = SyncSynced
	p.UpdatedAt = now
}

// MarkSyncFailed records a failed push to SMK.
func (p *Procedure) MarkSyncFailed(now time.Time) {
	p.SyncStatus = SyncFailed
	p.UpdatedAt = now
}

func (p *Procedure) touch(now time.Time) {
	if p.SyncStatus == SyncSynced {
		p.SyncStatus = SyncModified
	}
	p.UpdatedAt = now
}
