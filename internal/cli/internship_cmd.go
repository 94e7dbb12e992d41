package cli

import (
	"context"
	"fmt"

	"github.com/adamwrona/rezydent/internal/cli/formatter"
	"github.com/adamwrona/rezydent/internal/domain"
	"github.com/adamwrona/rezydent/internal/smk"
	"github.com/spf13/cobra"
)

func newInternshipCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "internship",
		Short: "Manage internships",
	}

	cmd.AddCommand(
		newInternshipAddCmd(app),
		newInternshipListCmd(app),
		newInternshipEditCmd(app),
		newInternshipRemoveCmd(app),
		newMarkSyncedCmd("internship", func(ctx context.Context, id string) error { return app.Internships.MarkSynced(ctx, id) }),
		newMarkFailedCmd("internship", func(ctx context.Context, id string) error { return app.Internships.MarkSyncFailed(ctx, id) }),
	)

	return cmd
}

func newInternshipAddCmd(app *App) *cobra.Command {
	var specFlag, name, requirementID, institution, startStr, endStr string
	var days, year int
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log an internship",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			spec, err := resolveSpecialization(ctx, app, specFlag)
			if err != nil {
				return err
			}

			st := smk.ForVersion(spec.SMKVersion)

			if interactive && app.interactive() {
				daysStr := fmt.Sprintf("%d", days)
				yearStr := fmt.Sprintf("%d", year)
				values := map[string]*string{
					"year":           &yearStr,
					"name":           &name,
					"requirement_id": &requirementID,
					"institution":    &institution,
					"days_count":     &daysStr,
					"start_date":     &startStr,
					"end_date":       &endStr,
				}
				if err := entryForm(st, smk.ViewInternship, values).Run(); err != nil {
					return err
				}
				days = atoiOrZero(daysStr)
				year = atoiOrZero(yearStr)
			}

			start, err := parseOptionalDate(startStr)
			if err != nil {
				return err
			}
			end, err := parseOptionalDate(endStr)
			if err != nil {
				return err
			}

			internship := &domain.Internship{
				SpecializationID: spec.ID,
				Year:             year,
				Name:             name,
				RequirementID:    requirementID,
				Institution:      institution,
				DaysCount:        days,
				StartDate:        start,
				EndDate:          end,
			}

			res, err := app.Internships.Add(ctx, internship)
			if err != nil {
				return err
			}
			if !printResult(res) {
				return nil
			}

			fmt.Printf("Logged internship (%d working days, %s)\n", days, internship.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&specFlag, "specialization", "", "Specialization ID")
	cmd.Flags().StringVar(&name, "name", "", "Internship name (old generation, blank matches the first requirement)")
	cmd.Flags().StringVar(&requirementID, "requirement", "", "Catalogue requirement ID (new generation)")
	cmd.Flags().StringVar(&institution, "institution", "", "Training institution")
	cmd.Flags().IntVar(&days, "days", 0, "Working days completed")
	cmd.Flags().IntVar(&year, "year", 0, "Training year (old generation)")
	cmd.Flags().StringVar(&startStr, "start", "", "Start date YYYY-MM-DD")
	cmd.Flags().StringVar(&endStr, "end", "", "End date YYYY-MM-DD")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in fields with an interactive form")

	return cmd
}

func newInternshipListCmd(app *App) *cobra.Command {
	var specFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List internships",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			spec, err := resolveSpecialization(ctx, app, specFlag)
			if err != nil {
				return err
			}

			internships, err := app.Internships.ListBySpecialization(ctx, spec.ID)
			if err != nil {
				return err
			}
			if len(internships) == 0 {
				fmt.Println("No internships found.")
				return nil
			}

			headers := []string{"ID", "NAME", "DAYS", "WHEN", "INSTITUTION", "SYNC"}
			rows := make([][]string, 0, len(internships))
			for _, i := range internships {
				name := i.Name
				if i.Version == domain.SMKNew {
					name = i.RequirementID
				} else if i.Unnamed() {
					name = formatter.Dim("(bez nazwy)")
				}
				when := formatter.YearLabel(i.Year)
				if i.Version == domain.SMKNew {
					when = fmt.Sprintf("%s – %s", formatter.HumanDate(i.StartDate), formatter.HumanDate(i.EndDate))
				}
				rows = append(rows, []string{
					formatter.TruncID(i.ID),
					truncate(name, 40),
					fmt.Sprintf("%d", i.DaysCount),
					when,
					truncate(i.Institution, 30),
					formatter.SyncPill(i.SyncStatus),
				})
			}

			fmt.Print(formatter.RenderBox("Internships", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().StringVar(&specFlag, "specialization", "", "Specialization ID")

	return cmd
}

func newInternshipEditCmd(app *App) *cobra.Command {
	var name, institution string
	var days, year int

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit an internship",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			current, err := app.Internships.GetByID(ctx, args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("name") {
				name = current.Name
			}
			if !cmd.Flags().Changed("institution") {
				institution = current.Institution
			}
			if !cmd.Flags().Changed("days") {
				days = current.DaysCount
			}
			if !cmd.Flags().Changed("year") {
				year = current.Year
			}

			res, err := app.Internships.Update(ctx, args[0], name, institution, days, year)
			if err != nil {
				return err
			}
			if !printResult(res) {
				return nil
			}

			fmt.Printf("Updated internship %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Internship name")
	cmd.Flags().StringVar(&institution, "institution", "", "Training institution")
	cmd.Flags().IntVar(&days, "days", 0, "Working days completed")
	cmd.Flags().IntVar(&year, "year", 0, "Training year (old generation)")

	return cmd
}

func newInternshipRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove an internship",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Internships.Delete(context.Background(), args[0])
			if err != nil {
				return err
			}
			if !printResult(res) {
				return nil
			}
			fmt.Printf("Removed internship %s\n", args[0])
			return nil
		},
	}
}
