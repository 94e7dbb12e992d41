package cli

import (
	"context"
	"fmt"

	"github.com/adamwrona/rezydent/internal/cli/formatter"
	"github.com/adamwrona/rezydent/internal/domain"
	"github.com/adamwrona/rezydent/internal/smk"
	"github.com/spf13/cobra"
)

func newCourseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Manage courses",
	}

	cmd.AddCommand(
		newCourseAddCmd(app),
		newCourseListCmd(app),
		newCourseRemoveCmd(app),
		newMarkSyncedCmd("course", func(ctx context.Context, id string) error { return app.Courses.MarkSynced(ctx, id) }),
	)

	return cmd
}

func newCourseAddCmd(app *App) *cobra.Command {
	var specFlag, name, requirementID, certNumber, completionStr string
	var year int
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a completed course",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			spec, err := resolveSpecialization(ctx, app, specFlag)
			if err != nil {
				return err
			}

			st := smk.ForVersion(spec.SMKVersion)

			if interactive && app.interactive() {
				yearStr := fmt.Sprintf("%d", year)
				values := map[string]*string{
					"year":               &yearStr,
					"name":               &name,
					"requirement_id":     &requirementID,
					"completion_date":    &completionStr,
					"certificate_number": &certNumber,
				}
				if err := entryForm(st, smk.ViewCourse, values).Run(); err != nil {
					return err
				}
				year = atoiOrZero(yearStr)
			}

			completion, err := parseOptionalDate(completionStr)
			if err != nil {
				return err
			}

			course := &domain.Course{
				SpecializationID:  spec.ID,
				Year:              year,
				Name:              name,
				RequirementID:     requirementID,
				CompletionDate:    completion,
				CertificateNumber: certNumber,
			}

			res, err := app.Courses.Add(ctx, course)
			if err != nil {
				return err
			}
			if !printResult(res) {
				return nil
			}

			fmt.Printf("Logged course (%s)\n", course.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&specFlag, "specialization", "", "Specialization ID")
	cmd.Flags().StringVar(&name, "name", "", "Course name (old generation)")
	cmd.Flags().StringVar(&requirementID, "requirement", "", "Catalogue requirement ID (new generation)")
	cmd.Flags().IntVar(&year, "year", 0, "Training year (old generation)")
	cmd.Flags().StringVar(&completionStr, "completed", "", "Completion date YYYY-MM-DD")
	cmd.Flags().StringVar(&certNumber, "certificate", "", "Certificate number")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in fields with an interactive form")

	return cmd
}

func newCourseListCmd(app *App) *cobra.Command {
	var specFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			spec, err := resolveSpecialization(ctx, app, specFlag)
			if err != nil {
				return err
			}

			courses, err := app.Courses.ListBySpecialization(ctx, spec.ID)
			if err != nil {
				return err
			}
			if len(courses) == 0 {
				fmt.Println("No courses found.")
				return nil
			}

			headers := []string{"ID", "COURSE", "COMPLETED", "CERTIFICATE", "SYNC"}
			rows := make([][]string, 0, len(courses))
			for _, c := range courses {
				what := c.Name
				if c.Version == domain.SMKNew {
					what = c.RequirementID
				}
				rows = append(rows, []string{
					formatter.TruncID(c.ID),
					truncate(what, 40),
					formatter.HumanDate(c.CompletionDate),
					c.CertificateNumber,
					formatter.SyncPill(c.SyncStatus),
				})
			}

			fmt.Print(formatter.RenderBox("Courses", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().StringVar(&specFlag, "specialization", "", "Specialization ID")

	return cmd
}

func newCourseRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Courses.Delete(context.Background(), args[0])
			if err != nil {
				return err
			}
			if !printResult(res) {
				return nil
			}
			fmt.Printf("Removed course %s\n", args[0])
			return nil
		},
	}
}
