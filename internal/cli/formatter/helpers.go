package formatter

import (
	"fmt"
	"time"

	"github.com/adamwrona/rezydent/internal/matching"
)

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// HumanDate renders a date as YYYY-MM-DD, or a dimmed dash for nil.
func HumanDate(t *time.Time) string {
	if t == nil {
		return StyleDim.Render("—")
	}
	return t.Format("2006-01-02")
}

// FormatDuration renders logged shift time with overflow minutes folded in,
// so an entry of 1h90m displays as 2h 30m.
func FormatDuration(hours, minutes int) string {
	h, m := matching.NormalizeDuration(hours, minutes)
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %02dm", h, m)
}

// FormatHours renders fractional hours compactly (15.5 -> "15.5h").
func FormatHours(hours float64) string {
	if hours == float64(int(hours)) {
		return fmt.Sprintf("%.0fh", hours)
	}
	return fmt.Sprintf("%.1fh", hours)
}

// YearLabel renders an old-generation training year, with the 0 sentinel
// shown as unassigned.
func YearLabel(year int) string {
	if year == 0 {
		return StyleDim.Render("nieprzypisany")
	}
	return fmt.Sprintf("rok %d", year)
}
