package matching

import (
	"testing"

	"github.com/adamwrona/rezydent/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSumShiftHours_Old(t *testing.T) {
	hours := SumShiftHours(ShiftInput{
		Version:        domain.SMKOld,
		ModuleType:     domain.ModuleBasic,
		HasBasicModule: true,
		Realizations: []*domain.MedicalShift{
			{Year: 1, Hours: 10, Minutes: 30},
			{Year: 2, Hours: 5, Minutes: 0},
			{Year: 3, Hours: 99, Minutes: 0}, // outside basic range
		},
	})
	assert.InDelta(t, 15.5, hours, 1e-9)
}

func TestSumShiftHours_OverflowMinutes(t *testing.T) {
	hours := SumShiftHours(ShiftInput{
		Version:        domain.SMKOld,
		ModuleType:     domain.ModuleBasic,
		HasBasicModule: true,
		Realizations: []*domain.MedicalShift{
			{Year: 1, Hours: 1, Minutes: 90},
		},
	})
	assert.InDelta(t, 2.5, hours, 1e-9, "90 minutes counts as 1.5 hours")
}

func TestSumShiftHours_NewByModuleID(t *testing.T) {
	hours := SumShiftHours(ShiftInput{
		Version:  domain.SMKNew,
		ModuleID: "m1",
		Realizations: []*domain.MedicalShift{
			{ModuleID: "m1", Hours: 8, Minutes: 0},
			{ModuleID: "m2", Hours: 4, Minutes: 0},
		},
	})
	assert.InDelta(t, 8.0, hours, 1e-9)
}

func TestNormalizeDuration(t *testing.T) {
	cases := []struct {
		h, m, wantH, wantM int
	}{
		{1, 90, 2, 30},
		{0, 59, 0, 59},
		{0, 60, 1, 0},
		{2, 0, 2, 0},
	}
	for _, tc := range cases {
		h, m := NormalizeDuration(tc.h, tc.m)
		assert.Equal(t, tc.wantH, h, "hours for %d:%d", tc.h, tc.m)
		assert.Equal(t, tc.wantM, m, "minutes for %d:%d", tc.h, tc.m)
	}
}
