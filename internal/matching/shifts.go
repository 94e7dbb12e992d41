package matching

import "github.com/adamwrona/rezydent/internal/domain"

// ShiftInput carries everything duty-shift aggregation needs.
type ShiftInput struct {
	Version        domain.SMKVersion
	ModuleID       string
	ModuleType     domain.ModuleType
	HasBasicModule bool
	Realizations   []*domain.MedicalShift
}

// SumShiftHours totals logged duty-shift time for a module, in hours. Shifts
// are not tied to a named requirement, so no name matching is involved: old
// generation selects by the module's year range, new generation by module id.
// Minutes are converted at face value (90 minutes adds 1.5 hours).
func SumShiftHours(in ShiftInput) float64 {
	var total float64
	if in.Version == domain.SMKNew {
		for _, s := range in.Realizations {
			if s.ModuleID == in.ModuleID {
				total += float64(s.Hours) + float64(s.Minutes)/60.0
			}
		}
		return total
	}

	lo, hi := domain.YearRange(in.ModuleType, in.HasBasicModule)
	for _, s := range in.Realizations {
		if s.Year >= lo && s.Year <= hi {
			total += float64(s.Hours) + float64(s.Minutes)/60.0
		}
	}
	return total
}

// NormalizeDuration folds overflow minutes into hours for display and
// summaries. Input values like (1, 90) are legal as entered and become
// (2, 30) here; normalization never happens at input time.
func NormalizeDuration(hours, minutes int) (int, int) {
	hours += minutes / 60
	minutes %= 60
	return hours, minutes
}
