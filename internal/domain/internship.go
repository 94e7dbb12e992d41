package domain

import (
	"fmt"
	"time"
)

// Internship is a logged internship stay. Old-generation records identify the
// requirement only by free-text name and training year; new-generation
// records reference the requirement directly.
type Internship struct {
	ID               string
	SpecializationID string
	ModuleID         string
	Version          SMKVersion

	// Old generation
	Year int
	Name string

	// New generation
	RequirementID string

	Institution string
	DaysCount   int
	StartDate   *time.Time
	EndDate     *time.Time

	SyncStatus SyncStatus
	IsApproved bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Unnamed reports whether the record lacks a usable name for matching,
// either blank or the old client's literal placeholder.
func (i *Internship) Unnamed() bool {
	return i.Name == "" || i.Name == UnnamedPlaceholder
}

// Deletable reports whether the internship may still be removed.
func (i *Internship) Deletable() bool {
	return i.SyncStatus != SyncSynced && !i.IsApproved
}

// ApplyEdit updates the mutable fields of a persisted internship.
func (i *Internship) ApplyEdit(name, institution string, daysCount, year int, now time.Time) error {
	if i.IsApproved {
		return fmt.Errorf("internship is approved and can no longer be edited")
	}
	if daysCount < 0 {
		return fmt.Errorf("days count must not be negative")
	}
	i.Name = name
	i.Institution = institution
	i.DaysCount = daysCount
	i.Year = year
	i.touch(now)
	return nil
}

// MarkSynced records a successful push to SMK.
func (i *Internship) MarkSynced(now time.Time) {
	i.SyncStatus = SyncSynced
	i.UpdatedAt = now
}

// MarkSyncFailed records a failed push to SMK.
func (i *Internship) MarkSyncFailed(now time.Time) {
	i.SyncStatus = SyncFailed
	i.UpdatedAt = now
}

func (i *Internship) touch(now time.Time) {
	if i.SyncStatus == SyncSynced {
		i.SyncStatus = SyncModified
	}
	i.UpdatedAt = now
}
