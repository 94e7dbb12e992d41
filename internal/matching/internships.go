package matching

import (
	"github.com/adamwrona/rezydent/internal/catalogue"
	"github.com/adamwrona/rezydent/internal/domain"
)

// InternshipMatch pairs one internship requirement with the realizations
// attributed to it. Completion is binary: fully met or not, never fractional.
type InternshipMatch struct {
	Requirement    catalogue.InternshipRequirement
	IntroducedDays int
	Completed      bool
	RealizationIDs []string
}

// InternshipInput carries everything internship matching needs. Matching is
// pure in-memory computation; callers load the pieces first.
type InternshipInput struct {
	Version        domain.SMKVersion
	Module         catalogue.ModuleRequirements
	HasBasicModule bool
	Realizations   []*domain.Internship
}

// MatchInternships pairs each internship requirement of the module with the
// realizations that satisfy it and computes introduced days per requirement.
//
// New generation: realizations reference requirements by id, no ambiguity.
// Old generation: candidates are realizations whose training year falls in
// the module's year range plus any with year 0 (explicitly unassigned),
// filtered per requirement by name similarity. A candidate with no usable
// name is attributed to the first requirement in declaration order only.
func MatchInternships(in InternshipInput) []InternshipMatch {
	matches := make([]InternshipMatch, 0, len(in.Module.Internships))

	if in.Version == domain.SMKNew {
		byReq := make(map[string][]*domain.Internship)
		for _, r := range in.Realizations {
			byReq[r.RequirementID] = append(byReq[r.RequirementID], r)
		}
		for _, req := range in.Module.Internships {
			matches = append(matches, buildMatch(req, byReq[req.ID]))
		}
		return matches
	}

	lo, hi := domain.YearRange(in.Module.Type, in.HasBasicModule)
	var candidates []*domain.Internship
	for _, r := range in.Realizations {
		if r.Year == 0 || (r.Year >= lo && r.Year <= hi) {
			candidates = append(candidates, r)
		}
	}

	for idx, req := range in.Module.Internships {
		var attributed []*domain.Internship
		for _, r := range candidates {
			if r.Unnamed() {
				// Unnamed realizations go to the first requirement only,
				// never distributed across several.
				if idx == 0 {
					attributed = append(attributed, r)
				}
				continue
			}
			if NamesMatch(req.Name, r.Name) {
				attributed = append(attributed, r)
			}
		}
		matches = append(matches, buildMatch(req, attributed))
	}
	return matches
}

func buildMatch(req catalogue.InternshipRequirement, realizations []*domain.Internship) InternshipMatch {
	m := InternshipMatch{Requirement: req}
	for _, r := range realizations {
		m.IntroducedDays += r.DaysCount
		m.RealizationIDs = append(m.RealizationIDs, r.ID)
	}
	m.Completed = m.IntroducedDays >= req.WorkingDays
	return m
}

// CompletedCount returns how many requirements are fully met. This count,
// not a percentage, is what the progress calculator consumes.
func CompletedCount(matches []InternshipMatch) int {
	var n int
	for _, m := range matches {
		if m.Completed {
			n++
		}
	}
	return n
}
