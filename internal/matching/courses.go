package matching

import "github.com/adamwrona/rezydent/internal/domain"

// CourseInput carries everything course attribution needs.
type CourseInput struct {
	Version        domain.SMKVersion
	ModuleID       string
	ModuleType     domain.ModuleType
	HasBasicModule bool
	Realizations   []*domain.Course
}

// CountCourses returns how many logged courses fall to the module. New
// generation selects by module id; old generation by the module's year range,
// with year 0 (unassigned) always a candidate.
func CountCourses(in CourseInput) int {
	var n int
	if in.Version == domain.SMKNew {
		for _, c := range in.Realizations {
			if c.ModuleID == in.ModuleID {
				n++
			}
		}
		return n
	}

	lo, hi := domain.YearRange(in.ModuleType, in.HasBasicModule)
	for _, c := range in.Realizations {
		if c.Year == 0 || (c.Year >= lo && c.Year <= hi) {
			n++
		}
	}
	return n
}
