package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/adamwrona/rezydent/internal/cli/formatter"
	"github.com/adamwrona/rezydent/internal/domain"
	"github.com/spf13/cobra"
)

func newSpecializationCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "spec",
		Aliases: []string{"specialization"},
		Short:   "Manage specializations",
	}

	cmd.AddCommand(
		newSpecCreateCmd(app),
		newSpecListCmd(app),
		newSpecShowCmd(app),
		newSpecSetModuleCmd(app),
	)

	return cmd
}

func newSpecCreateCmd(app *App) *cobra.Command {
	var name, programCode, version string
	startDate := time.Now()

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new specialization",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			spec, res, err := app.Specializations.Create(ctx, name, programCode, domain.SMKVersion(version), startDate)
			if err != nil {
				return err
			}
			if !printResult(res) {
				return nil
			}

			fmt.Printf("Created specialization %s (%s, SMK %s)\n", formatter.Bold(spec.Name), spec.ID, spec.SMKVersion)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Specialization name")
	cmd.Flags().StringVar(&programCode, "program", "", "Program code from the requirement catalogue")
	cmd.Flags().StringVar(&version, "version", "old", "SMK schema generation (old or new)")
	dateVar(cmd.Flags(), &startDate, "start", "Training start date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("program")

	return cmd
}

func newSpecListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List specializations",
		RunE: func(cmd *cobra.Command, args []string) error {
			specs, err := app.Specializations.List(context.Background())
			if err != nil {
				return err
			}
			if len(specs) == 0 {
				fmt.Println("No specializations found.")
				return nil
			}

			headers := []string{"ID", "NAME", "PROGRAM", "SMK", "STARTED"}
			rows := make([][]string, 0, len(specs))
			for _, s := range specs {
				rows = append(rows, []string{
					formatter.TruncID(s.ID),
					s.Name,
					s.ProgramCode,
					string(s.SMKVersion),
					s.StartDate.Format("2006-01-02"),
				})
			}

			fmt.Print(formatter.RenderBox("Specializations", formatter.RenderTable(headers, rows)))
			return nil
		},
	}
}

func newSpecShowCmd(app *App) *cobra.Command {
	var specFlag string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a specialization and its modules",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			spec, err := resolveSpecialization(ctx, app, specFlag)
			if err != nil {
				return err
			}

			modules, err := app.Specializations.Modules(ctx, spec.ID)
			if err != nil {
				return err
			}

			headers := []string{"", "MODULE", "TYPE", "INTERNSHIPS", "COURSES", "PROC A", "PROC B", "HOURS"}
			rows := make([][]string, 0, len(modules))
			for _, m := range modules {
				current := " "
				if m.ID == spec.CurrentModuleID {
					current = formatter.StyleHeader.Render("▶")
				}
				rows = append(rows, []string{
					current,
					m.Name,
					string(m.Type),
					formatter.RenderFraction(m.CompletedInternships, m.TotalInternships),
					formatter.RenderFraction(m.CompletedCourses, m.TotalCourses),
					formatter.RenderFraction(m.CompletedProceduresA, m.TotalProceduresA),
					formatter.RenderFraction(m.CompletedProceduresB, m.TotalProceduresB),
					fmt.Sprintf("%s/%s", formatter.FormatHours(m.CompletedShiftHours), formatter.FormatHours(m.RequiredShiftHours)),
				})
			}

			title := fmt.Sprintf("%s (SMK %s)", spec.Name, spec.SMKVersion)
			fmt.Print(formatter.RenderBox(title, formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().StringVar(&specFlag, "specialization", "", "Specialization ID")

	return cmd
}

func newSpecSetModuleCmd(app *App) *cobra.Command {
	var specFlag string

	cmd := &cobra.Command{
		Use:   "set-module MODULE_ID",
		Short: "Switch the active training module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			spec, err := resolveSpecialization(ctx, app, specFlag)
			if err != nil {
				return err
			}

			res, err := app.Specializations.SetCurrentModule(ctx, spec.ID, args[0])
			if err != nil {
				return err
			}
			if !printResult(res) {
				return nil
			}

			fmt.Printf("Current module set to %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&specFlag, "specialization", "", "Specialization ID")

	return cmd
}
