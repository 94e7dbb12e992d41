package domain

import (
	"fmt"
	"time"
)

// MedicalShift is a logged duty shift. The record is a tagged variant: the
// Version field selects which shape is populated. Old-generation shifts are
// bucketed by training year (0 = not yet assigned); new-generation shifts
// carry an explicit date and a direct internship requirement reference.
type MedicalShift struct {
	ID               string
	SpecializationID string
	ModuleID         string
	Version          SMKVersion

	// Old generation
	Year     int
	Location string

	// New generation
	Date          *time.Time
	InternshipReq string

	// Minutes are stored as entered and may exceed 59; values like 90 are
	// normalized only when summarized, never rejected.
	Hours   int
	Minutes int

	SyncStatus SyncStatus
	IsApproved bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TotalMinutes returns the raw logged duration.
func (s *MedicalShift) TotalMinutes() int {
	return s.Hours*60 + s.Minutes
}

// Deletable reports whether the shift may still be removed. Synced and
// approved records are immutable history.
func (s *MedicalShift) Deletable() bool {
	return s.SyncStatus != SyncSynced && !s.IsApproved
}

// ApplyEdit updates the mutable fields of a persisted shift. The shift date
// is fixed once persisted; changing it requires delete + recreate.
func (s *MedicalShift) ApplyEdit(hours, minutes, year int, location string, now time.Time) error {
	if s.IsApproved {
		return fmt.Errorf("shift is approved and can no longer be edited")
	}
	s.Hours = hours
	s.Minutes = minutes
	s.Year = year
	s.Location = location
	s.touch(now)
	return nil
}

// MarkSynced records a successful push to SMK.
func (s *MedicalShift) MarkSynced(now time.Time) {
	s.SyncStatus = SyncSynced
	s.UpdatedAt = now
}

// MarkSyncFailed records a failed push to SMK.
func (s *MedicalShift) MarkSyncFailed(now time.Time) {
	s.SyncStatus = SyncFailed
	s.UpdatedAt = now
}

// touch bumps UpdatedAt and downgrades a previously-synced record to
// Modified. A record never silently returns to Synced.
func (s *MedicalShift) touch(now time.Time) {
	if s.SyncStatus == SyncSynced {
		s.SyncStatus = SyncModified
	}
	s.UpdatedAt = now
}
