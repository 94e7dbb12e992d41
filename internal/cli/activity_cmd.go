package cli

import (
	"context"
	"fmt"

	"github.com/adamwrona/rezydent/internal/cli/formatter"
	"github.com/adamwrona/rezydent/internal/domain"
	"github.com/spf13/cobra"
)

func newActivityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Manage other activities (self-education, publications, absences)",
	}

	cmd.AddCommand(
		newActivityAddCmd(app),
		newActivityListCmd(app),
		newActivityRemoveCmd(app),
	)

	return cmd
}

func newActivityAddCmd(app *App) *cobra.Command {
	var specFlag, kind, title, dateStr string
	var year int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log an activity",
		Long: "Log an activity. Valid kinds: self_education, educational_activity,\n" +
			"publication, absence.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			spec, err := resolveSpecialization(ctx, app, specFlag)
			if err != nil {
				return err
			}

			date, err := parseOptionalDate(dateStr)
			if err != nil {
				return err
			}

			activity := &domain.Activity{
				SpecializationID: spec.ID,
				Kind:             domain.ActivityKind(kind),
				Year:             year,
				Title:            title,
				Date:             date,
			}

			res, err := app.Activities.Add(ctx, activity)
			if err != nil {
				return err
			}
			if !printResult(res) {
				return nil
			}

			fmt.Printf("Logged %s activity (%s)\n", kind, activity.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&specFlag, "specialization", "", "Specialization ID")
	cmd.Flags().StringVar(&kind, "kind", "", "Activity kind")
	cmd.Flags().StringVar(&title, "title", "", "Activity title")
	cmd.Flags().IntVar(&year, "year", 0, "Training year")
	cmd.Flags().StringVar(&dateStr, "date", "", "Activity date YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newActivityListCmd(app *App) *cobra.Command {
	var specFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			spec, err := resolveSpecialization(ctx, app, specFlag)
			if err != nil {
				return err
			}

			activities, err := app.Activities.ListBySpecialization(ctx, spec.ID)
			if err != nil {
				return err
			}
			if len(activities) == 0 {
				fmt.Println("No activities found.")
				return nil
			}

			headers := []string{"ID", "KIND", "TITLE", "WHEN", "SYNC"}
			rows := make([][]string, 0, len(activities))
			for _, a := range activities {
				when := formatter.YearLabel(a.Year)
				if a.Date != nil {
					when = formatter.HumanDate(a.Date)
				}
				rows = append(rows, []string{
					formatter.TruncID(a.ID),
					string(a.Kind),
					truncate(a.Title, 40),
					when,
					formatter.SyncPill(a.SyncStatus),
				})
			}

			fmt.Print(formatter.RenderBox("Activities", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().StringVar(&specFlag, "specialization", "", "Specialization ID")

	return cmd
}

func newActivityRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Activities.Delete(context.Background(), args[0])
			if err != nil {
				return err
			}
			if !printResult(res) {
				return nil
			}
			fmt.Printf("Removed activity %s\n", args[0])
			return nil
		},
	}
}
