package service

import (
	"github.com/adamwrona/rezydent/internal/contract"
	"github.com/adamwrona/rezydent/internal/domain"
	"github.com/adamwrona/rezydent/internal/smk"
)

// defaultProgramYears bounds the old-generation training-year check when the
// program document does not declare a duration.
const defaultProgramYears = 6

func message(st smk.Strategy, view, rule, fallback string) string {
	if m := st.ValidationMessage(view, rule); m != "" {
		return m
	}
	return fallback
}

func yearInRange(year, programYears int) bool {
	return year == 0 || (year >= 1 && year <= programYears)
}

// validateShift checks every duty-shift rule independently; a shift with a
// bad date and a zero duration reports both failures.
func validateShift(st smk.Strategy, s *domain.MedicalShift, internship *domain.Internship, programYears int) contract.Result {
	var res contract.Result

	if s.Hours < 0 || s.Minutes < 0 || s.TotalMinutes() <= 0 {
		res.Add(contract.FailureValidation, "duration",
			message(st, smk.ViewMedicalShift, "duration", "duration must be greater than zero"))
	}

	if s.Version == domain.SMKNew {
		if s.Year <= 0 {
			res.Add(contract.FailureValidation, "year",
				message(st, smk.ViewMedicalShift, "year", "training year must be positive"))
		}
		if s.InternshipReq == "" {
			res.Add(contract.FailureValidation, "internship_req",
				message(st, smk.ViewMedicalShift, "internship_req", "Wybierz staż kierunkowy"))
		}
		if s.Date == nil {
			res.Add(contract.FailureValidation, "date", "Data dyżuru jest wymagana")
		} else if internship != nil && !dateWithin(s, internship) {
			res.Add(contract.FailureValidation, "date",
				message(st, smk.ViewMedicalShift, "date_range", "shift date outside internship range"))
		}
		return res
	}

	if !yearInRange(s.Year, programYears) {
		res.Add(contract.FailureValidation, "year",
			message(st, smk.ViewMedicalShift, "year", "training year must be 0 or within the program range"))
	}
	return res
}

func dateWithin(s *domain.MedicalShift, internship *domain.Internship) bool {
	if internship.StartDate != nil && s.Date.Before(*internship.StartDate) {
		return false
	}
	if internship.EndDate != nil && s.Date.After(*internship.EndDate) {
		return false
	}
	return true
}

func validateInternship(st smk.Strategy, i *domain.Internship, programYears int) contract.Result {
	var res contract.Result

	if i.DaysCount <= 0 {
		res.Add(contract.FailureValidation, "days_count",
			message(st, smk.ViewInternship, "days", "days count must be greater than zero"))
	}

	if i.Version == domain.SMKNew {
		if i.RequirementID == "" {
			res.Add(contract.FailureValidation, "requirement_id",
				message(st, smk.ViewInternship, "requirement", "Wybierz staż z programu specjalizacji"))
		}
		if i.StartDate != nil && i.EndDate != nil && i.EndDate.Before(*i.StartDate) {
			res.Add(contract.FailureValidation, "end_date",
				message(st, smk.ViewInternship, "date_range", "end date before start date"))
		}
		return res
	}

	if !yearInRange(i.Year, programYears) {
		res.Add(contract.FailureValidation, "year",
			message(st, smk.ViewInternship, "year", "training year must be 0 or within the program range"))
	}
	return res
}

func validateProcedure(st smk.Strategy, p *domain.Procedure, programYears int) contract.Result {
	var res contract.Result

	if p.Version == domain.SMKNew {
		if p.RequirementID == "" {
			res.Add(contract.FailureValidation, "requirement_id",
				message(st, smk.ViewProcedure, "requirement", "Wybierz procedurę z programu specjalizacji"))
		}
		if p.CountOperator < 0 || p.CountAssistant < 0 || p.CountOperator+p.CountAssistant <= 0 {
			res.Add(contract.FailureValidation, "counts",
				message(st, smk.ViewProcedure, "counts", "total count must be greater than zero"))
		}
		return res
	}

	if p.Code == "" {
		res.Add(contract.FailureValidation, "code", "Kod zabiegu jest wymagany")
	}
	if p.Role != domain.RoleOperator && p.Role != domain.RoleAssistant {
		res.Add(contract.FailureValidation, "role",
			message(st, smk.ViewProcedure, "role", "role must be A or B"))
	}
	if !yearInRange(p.Year, programYears) {
		res.Add(contract.FailureValidation, "year",
			message(st, smk.ViewProcedure, "year", "training year must be 0 or within the program range"))
	}
	return res
}

func validateCourse(st smk.Strategy, c *domain.Course, programYears int) contract.Result {
	var res contract.Result

	if c.Version == domain.SMKNew {
		if c.RequirementID == "" {
			res.Add(contract.FailureValidation, "requirement_id",
				message(st, smk.ViewCourse, "requirement", "Wybierz kurs z programu specjalizacji"))
		}
		if c.CompletionDate == nil {
			res.Add(contract.FailureValidation, "completion_date", "Data ukończenia jest wymagana")
		}
		return res
	}

	if c.Name == "" {
		res.Add(contract.FailureValidation, "name",
			message(st, smk.ViewCourse, "name", "course name is required"))
	}
	if !yearInRange(c.Year, programYears) {
		res.Add(contract.FailureValidation, "year", "Rok szkolenia musi być równy 0 lub mieścić się w okresie specjalizacji")
	}
	return res
}

func validateActivity(a *domain.Activity) contract.Result {
	var res contract.Result
	if !domain.ValidActivityKinds[string(a.Kind)] {
		res.Add(contract.FailureValidation, "kind", "Nieznany rodzaj aktywności")
	}
	if a.Title == "" {
		res.Add(contract.FailureValidation, "title", "Tytuł jest wymagany")
	}
	return res
}
