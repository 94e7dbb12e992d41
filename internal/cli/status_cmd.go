package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/adamwrona/rezydent/internal/cli/formatter"
	"github.com/adamwrona/rezydent/internal/progress"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var specFlag string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show training progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			spec, err := resolveSpecialization(ctx, app, specFlag)
			if err != nil {
				return err
			}

			resp, err := app.Specializations.GetStatistics(ctx, spec.ID)
			if err != nil {
				return err
			}

			var b strings.Builder
			b.WriteString(renderStatistics(resp.Statistics))

			for _, m := range resp.Modules {
				b.WriteString("\n")
				b.WriteString(formatter.Header(m.ModuleName))
				b.WriteString("\n")
				b.WriteString(renderStatistics(m.Statistics))
			}

			title := fmt.Sprintf("%s (SMK %s)", spec.Name, spec.SMKVersion)
			fmt.Print(formatter.RenderBox(title, b.String()))
			return nil
		},
	}

	cmd.AddCommand(newStatusInternshipsCmd(app))

	cmd.Flags().StringVar(&specFlag, "specialization", "", "Specialization ID")

	return cmd
}

func renderStatistics(s progress.SpecializationStatistics) string {
	var b strings.Builder

	line := func(label, value string) {
		b.WriteString(fmt.Sprintf("%-22s %s\n", formatter.Dim(label), value))
	}

	line("Staże", formatter.RenderFraction(s.Internships.Completed, s.Internships.Required))
	line("Kursy", formatter.RenderFraction(s.Courses.Completed, s.Courses.Required))
	line("Procedury (operator)", formatter.RenderFraction(s.ProceduresOperator.Completed, s.ProceduresOperator.Required))
	line("Procedury (asysta)", formatter.RenderFraction(s.ProceduresAssistant.Completed, s.ProceduresAssistant.Required))
	line("Dyżury", fmt.Sprintf("%s / %s",
		formatter.FormatHours(s.ShiftHours.Completed), formatter.FormatHours(s.ShiftHours.Required)))

	if s.SelfEducation.Required > 0 || s.SelfEducation.Completed > 0 {
		line("Samokształcenie", formatter.RenderFraction(s.SelfEducation.Completed, s.SelfEducation.Required))
	}
	if s.EducationalActivities.Required > 0 || s.EducationalActivities.Completed > 0 {
		line("Działalność edukacyjna", formatter.RenderFraction(s.EducationalActivities.Completed, s.EducationalActivities.Required))
	}
	if s.Publications.Required > 0 || s.Publications.Completed > 0 {
		line("Publikacje", formatter.RenderFraction(s.Publications.Completed, s.Publications.Required))
	}
	if s.Absences.Completed > 0 {
		line("Nieobecności", fmt.Sprintf("%d", s.Absences.Completed))
	}

	b.WriteString("\n")
	b.WriteString(formatter.RenderProgress(s.OverallProgress, 30))
	b.WriteString("\n")

	return b.String()
}

func newStatusInternshipsCmd(app *App) *cobra.Command {
	var specFlag string

	cmd := &cobra.Command{
		Use:   "internships",
		Short: "Show internship requirements and matched realizations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			spec, err := resolveSpecialization(ctx, app, specFlag)
			if err != nil {
				return err
			}

			modules, err := app.Specializations.GetMatchedInternships(ctx, spec.ID)
			if err != nil {
				return err
			}

			var b strings.Builder
			for i, m := range modules {
				if i > 0 {
					b.WriteString("\n")
				}
				b.WriteString(formatter.Header(m.ModuleName))
				b.WriteString("\n")

				if len(m.Matches) == 0 {
					b.WriteString(formatter.Dim("Brak wymagań stażowych.") + "\n")
					continue
				}

				headers := []string{"", "REQUIREMENT", "DAYS", "REALIZATIONS"}
				rows := make([][]string, 0, len(m.Matches))
				for _, match := range m.Matches {
					rows = append(rows, []string{
						formatter.CompletionMark(match.Completed),
						truncate(match.RequirementName, 50),
						fmt.Sprintf("%d/%d", match.IntroducedDays, match.RequiredDays),
						fmt.Sprintf("%d", len(match.RealizationIDs)),
					})
				}
				b.WriteString(formatter.RenderTable(headers, rows))
			}

			fmt.Print(formatter.RenderBox("Internship Requirements", b.String()))
			return nil
		},
	}

	cmd.Flags().StringVar(&specFlag, "specialization", "", "Specialization ID")

	return cmd
}
