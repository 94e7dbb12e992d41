package matching

import (
	"strings"

	"github.com/adamwrona/rezydent/internal/catalogue"
	"github.com/adamwrona/rezydent/internal/domain"
)

// ProcedureMatch pairs one procedure requirement with the realization counts
// attributed to it, split by role.
type ProcedureMatch struct {
	Requirement        catalogue.ProcedureRequirement
	OperatorDone       int
	AssistantDone      int
	OperatorCompleted  bool
	AssistantCompleted bool
	Completed          bool
}

// ProcedureInput carries everything procedure matching needs.
type ProcedureInput struct {
	Version        domain.SMKVersion
	Module         catalogue.ModuleRequirements
	HasBasicModule bool
	Realizations   []*domain.Procedure
}

// MatchProcedures attributes logged procedures to requirements and sums
// operator and assistant counts. New generation matches by requirement id;
// old generation filters by the module's year range (year 0 always included)
// and pairs by procedure code, exact case-insensitive first, then on the
// normalized form.
func MatchProcedures(in ProcedureInput) []ProcedureMatch {
	matches := make([]ProcedureMatch, 0, len(in.Module.Procedures))

	candidates := in.Realizations
	if in.Version == domain.SMKOld {
		lo, hi := domain.YearRange(in.Module.Type, in.HasBasicModule)
		candidates = nil
		for _, p := range in.Realizations {
			if p.Year == 0 || (p.Year >= lo && p.Year <= hi) {
				candidates = append(candidates, p)
			}
		}
	}

	for _, req := range in.Module.Procedures {
		m := ProcedureMatch{Requirement: req}
		for _, p := range candidates {
			if !procedureMatches(in.Version, req, p) {
				continue
			}
			m.OperatorDone += p.OperatorCount()
			m.AssistantDone += p.AssistantCount()
		}
		m.OperatorCompleted = m.OperatorDone >= req.RequiredAsOperator
		m.AssistantCompleted = m.AssistantDone >= req.RequiredAsAssistant
		m.Completed = m.OperatorCompleted && m.AssistantCompleted
		matches = append(matches, m)
	}
	return matches
}

func procedureMatches(version domain.SMKVersion, req catalogue.ProcedureRequirement, p *domain.Procedure) bool {
	if version == domain.SMKNew {
		return p.RequirementID == req.ID
	}
	if strings.EqualFold(req.Code, p.Code) {
		return true
	}
	return req.Code != "" && p.Code != "" && Normalize(req.Code) == Normalize(p.Code)
}

// CompletedProcedureCounts returns how many requirements are fully met per
// role across the given matches.
func CompletedProcedureCounts(matches []ProcedureMatch) (operator, assistant int) {
	for _, m := range matches {
		if m.OperatorCompleted {
			operator++
		}
		if m.AssistantCompleted {
			assistant++
		}
	}
	return operator, assistant
}
