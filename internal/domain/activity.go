package domain

import "time"

// Activity is a logged "other" activity: self-education, educational
// activity, publication or absence. These appear in the statistics snapshot
// but carry no weighted completion of their own.
type Activity struct {
	ID               string
	SpecializationID string
	ModuleID         string
	Kind             ActivityKind

	Year  int
	Title string
	Date  *time.Time

	SyncStatus SyncStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Deletable reports whether the activity may still be removed.
func (a *Activity) Deletable() bool {
	return a.SyncStatus != SyncSynced
}
