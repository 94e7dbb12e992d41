package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestShiftTotalMinutes(t *testing.T) {
	cases := []struct {
		hours, minutes, want int
	}{
		{0, 0, 0},
		{1, 30, 90},
		{1, 90, 150}, // minutes beyond 59 are legal as entered
		{24, 0, 1440},
	}
	for _, tc := range cases {
		s := &MedicalShift{Hours: tc.hours, Minutes: tc.minutes}
		assert.Equal(t, tc.want, s.TotalMinutes(), "hours=%d minutes=%d", tc.hours, tc.minutes)
	}
}

func TestShiftDeletable(t *testing.T) {
	cases := []struct {
		status    SyncStatus
		approved  bool
		deletable bool
	}{
		{SyncNotSynced, false, true},
		{SyncModified, false, true},
		{SyncFailed, false, true},
		{SyncSynced, false, false},
		{SyncNotSynced, true, false},
		{SyncSynced, true, false},
	}
	for _, tc := range cases {
		s := &MedicalShift{SyncStatus: tc.status, IsApproved: tc.approved}
		assert.Equal(t, tc.deletable, s.Deletable(), "status=%s approved=%v", tc.status, tc.approved)
	}
}

func TestShiftEdit_SyncedBecomesModified(t *testing.T) {
	s := &MedicalShift{SyncStatus: SyncSynced}
	require.NoError(t, s.ApplyEdit(10, 5, 2, "ward B", testNow))
	assert.Equal(t, SyncModified, s.SyncStatus)
	assert.Equal(t, testNow, s.UpdatedAt)
}

func TestShiftEdit_ModifiedStaysModified(t *testing.T) {
	s := &MedicalShift{SyncStatus: SyncModified}
	require.NoError(t, s.ApplyEdit(10, 5, 2, "ward B", testNow))
	assert.Equal(t, SyncModified, s.SyncStatus, "never silently back to synced")
}

func TestShiftEdit_ApprovedRejected(t *testing.T) {
	s := &MedicalShift{IsApproved: true, Hours: 8}
	err := s.ApplyEdit(10, 0, 1, "", testNow)
	require.Error(t, err)
	assert.Equal(t, 8, s.Hours, "fields should not change")
}

func TestShiftMarkSyncedAndFailed(t *testing.T) {
	s := &MedicalShift{SyncStatus: SyncNotSynced}
	s.MarkSynced(testNow)
	assert.Equal(t, SyncSynced, s.SyncStatus)

	s.MarkSyncFailed(testNow)
	assert.Equal(t, SyncFailed, s.SyncStatus)
}
