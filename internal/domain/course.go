package domain

import "time"

// Course is a completed training course logged by the trainee.
type Course struct {
	ID               string
	SpecializationID string
	ModuleID         string
	Version          SMKVersion

	// Old generation
	Year int
	Name string

	// New generation
	RequirementID string

	CompletionDate    *time.Time
	CertificateNumber string

	SyncStatus SyncStatus
	IsApproved bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Deletable reports whether the course may still be removed.
func (c *Course) Deletable() bool {
	return c.SyncStatus != SyncSynced && !c.IsApproved
}

// MarkSynced records a successful push to SMK.
func (c *Course) MarkSynced(now time.Time) {
	c.SyncStatus = SyncSynced
	c.UpdatedAt = now
}

// Touch bumps UpdatedAt and downgrades a synced record to Modified.
func (c *Course) Touch(now time.Time) {
	if c.SyncStatus == SyncSynced {
		c.SyncStatus = SyncModified
	}
	c.UpdatedAt = now
}
