package cli

import (
	"context"
	"fmt"

	"github.com/adamwrona/rezydent/internal/cli/formatter"
	"github.com/adamwrona/rezydent/internal/domain"
	"github.com/adamwrona/rezydent/internal/smk"
	"github.com/spf13/cobra"
)

func newShiftCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shift",
		Short: "Manage medical shifts",
	}

	cmd.AddCommand(
		newShiftAddCmd(app),
		newShiftListCmd(app),
		newShiftEditCmd(app),
		newShiftRemoveCmd(app),
		newMarkSyncedCmd("shift", func(ctx context.Context, id string) error { return app.Shifts.MarkSynced(ctx, id) }),
		newMarkFailedCmd("shift", func(ctx context.Context, id string) error { return app.Shifts.MarkSyncFailed(ctx, id) }),
	)

	return cmd
}

func newShiftAddCmd(app *App) *cobra.Command {
	var specFlag, location, internshipReq, dateStr string
	var hours, minutes, year int
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a medical shift",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			spec, err := resolveSpecialization(ctx, app, specFlag)
			if err != nil {
				return err
			}

			st := smk.ForVersion(spec.SMKVersion)

			if interactive && app.interactive() {
				hoursStr := fmt.Sprintf("%d", hours)
				minutesStr := fmt.Sprintf("%d", minutes)
				yearStr := fmt.Sprintf("%d", year)
				values := map[string]*string{
					"year":           &yearStr,
					"hours":          &hoursStr,
					"minutes":        &minutesStr,
					"location":       &location,
					"date":           &dateStr,
					"internship_req": &internshipReq,
				}
				if err := entryForm(st, smk.ViewMedicalShift, values).Run(); err != nil {
					return err
				}
				hours = atoiOrZero(hoursStr)
				minutes = atoiOrZero(minutesStr)
				year = atoiOrZero(yearStr)
			}

			date, err := parseOptionalDate(dateStr)
			if err != nil {
				return err
			}

			shift := &domain.MedicalShift{
				SpecializationID: spec.ID,
				Year:             year,
				Location:         location,
				Date:             date,
				InternshipReq:    internshipReq,
				Hours:            hours,
				Minutes:          minutes,
			}

			res, err := app.Shifts.Add(ctx, shift)
			if err != nil {
				return err
			}
			if !printResult(res) {
				return nil
			}

			fmt.Printf("Logged shift %s (%s)\n", formatter.FormatDuration(hours, minutes), shift.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&specFlag, "specialization", "", "Specialization ID")
	cmd.Flags().IntVar(&hours, "hours", 0, "Shift duration in hours")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Additional minutes (values over 59 are kept as entered)")
	cmd.Flags().IntVar(&year, "year", 0, "Training year (old generation)")
	cmd.Flags().StringVar(&location, "location", "", "Where the shift took place")
	cmd.Flags().StringVar(&dateStr, "date", "", "Shift date YYYY-MM-DD (new generation)")
	cmd.Flags().StringVar(&internshipReq, "internship", "", "Linked internship ID (new generation)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in fields with an interactive form")

	return cmd
}

func newShiftListCmd(app *App) *cobra.Command {
	var specFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List medical shifts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			spec, err := resolveSpecialization(ctx, app, specFlag)
			if err != nil {
				return err
			}

			shifts, err := app.Shifts.ListBySpecialization(ctx, spec.ID)
			if err != nil {
				return err
			}
			if len(shifts) == 0 {
				fmt.Println("No shifts found.")
				return nil
			}

			headers := []string{"ID", "WHEN", "DURATION", "LOCATION", "SYNC"}
			rows := make([][]string, 0, len(shifts))
			for _, s := range shifts {
				when := formatter.YearLabel(s.Year)
				if s.Version == domain.SMKNew {
					when = formatter.HumanDate(s.Date)
				}
				rows = append(rows, []string{
					formatter.TruncID(s.ID),
					when,
					formatter.FormatDuration(s.Hours, s.Minutes),
					truncate(s.Location, 30),
					formatter.SyncPill(s.SyncStatus),
				})
			}

			fmt.Print(formatter.RenderBox("Medical Shifts", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().StringVar(&specFlag, "specialization", "", "Specialization ID")

	return cmd
}

func newShiftEditCmd(app *App) *cobra.Command {
	var location string
	var hours, minutes, year int

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a medical shift",
		Long:  "Edit a medical shift. The shift date cannot be changed once logged.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			current, err := app.Shifts.GetByID(ctx, args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("hours") {
				hours = current.Hours
			}
			if !cmd.Flags().Changed("minutes") {
				minutes = current.Minutes
			}
			if !cmd.Flags().Changed("year") {
				year = current.Year
			}
			if !cmd.Flags().Changed("location") {
				location = current.Location
			}

			res, err := app.Shifts.Update(ctx, args[0], hours, minutes, year, location)
			if err != nil {
				return err
			}
			if !printResult(res) {
				return nil
			}

			fmt.Printf("Updated shift %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().IntVar(&hours, "hours", 0, "Shift duration in hours")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Additional minutes")
	cmd.Flags().IntVar(&year, "year", 0, "Training year (old generation)")
	cmd.Flags().StringVar(&location, "location", "", "Where the shift took place")

	return cmd
}

func newShiftRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a medical shift",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Shifts.Delete(context.Background(), args[0])
			if err != nil {
				return err
			}
			if !printResult(res) {
				return nil
			}
			fmt.Printf("Removed shift %s\n", args[0])
			return nil
		},
	}
}

// newMarkSyncedCmd builds the shared "mark-synced" subcommand for realization
// types that track sync status.
func newMarkSyncedCmd(noun string, mark func(ctx context.Context, id string) error) *cobra.Command {
	return &cobra.Command{
		Use:   "mark-synced ID",
		Short: fmt.Sprintf("Mark a %s as synchronized with SMK", noun),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := mark(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Marked %s %s as synced\n", noun, args[0])
			return nil
		},
	}
}

func newMarkFailedCmd(noun string, mark func(ctx context.Context, id string) error) *cobra.Command {
	return &cobra.Command{
		Use:   "mark-failed ID",
		Short: fmt.Sprintf("Record a failed SMK synchronization for a %s", noun),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := mark(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Recorded sync failure for %s %s\n", noun, args[0])
			return nil
		},
	}
}
