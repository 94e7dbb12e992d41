package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name    string
		hours   int
		minutes int
		want    string
	}{
		{"whole hours", 10, 0, "10h"},
		{"hours and minutes", 1, 30, "1h 30m"},
		{"overflow minutes fold into hours", 1, 90, "2h 30m"},
		{"exact overflow", 0, 120, "2h"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.hours, tt.minutes))
		})
	}
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "600h", FormatHours(600))
	assert.Equal(t, "15.5h", FormatHours(15.5))
}

func TestHumanDate(t *testing.T) {
	d := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-15", HumanDate(&d))
	assert.Contains(t, HumanDate(nil), "—")
}

func TestTruncID(t *testing.T) {
	got := TruncID("0123456789abcdef")
	assert.Contains(t, got, "01234567")
	assert.NotContains(t, got, "89abcdef")
}

func TestYearLabel(t *testing.T) {
	assert.Contains(t, YearLabel(3), "rok 3")
	assert.Contains(t, YearLabel(0), "nieprzypisany")
}
