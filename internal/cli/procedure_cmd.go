package cli

import (
	"context"
	"fmt"

	"github.com/adamwrona/rezydent/internal/cli/formatter"
	"github.com/adamwrona/rezydent/internal/domain"
	"github.com/adamwrona/rezydent/internal/smk"
	"github.com/spf13/cobra"
)

func newProcedureCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "procedure",
		Short: "Manage procedures",
	}

	cmd.AddCommand(
		newProcedureAddCmd(app),
		newProcedureListCmd(app),
		newProcedureEditCmd(app),
		newProcedureRemoveCmd(app),
		newMarkSyncedCmd("procedure", func(ctx context.Context, id string) error { return app.Procedures.MarkSynced(ctx, id) }),
		newMarkFailedCmd("procedure", func(ctx context.Context, id string) error { return app.Procedures.MarkSyncFailed(ctx, id) }),
	)

	return cmd
}

func newProcedureAddCmd(app *App) *cobra.Command {
	var specFlag, code, role, person, location, requirementID, dateStr string
	var year, countOperator, countAssistant int
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a procedure",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			spec, err := resolveSpecialization(ctx, app, specFlag)
			if err != nil {
				return err
			}

			st := smk.ForVersion(spec.SMKVersion)

			if interactive && app.interactive() {
				yearStr := fmt.Sprintf("%d", year)
				opStr := fmt.Sprintf("%d", countOperator)
				asstStr := fmt.Sprintf("%d", countAssistant)
				values := map[string]*string{
					"year":              &yearStr,
					"code":              &code,
					"role":              &role,
					"performing_person": &person,
					"location":          &location,
					"date":              &dateStr,
					"requirement_id":    &requirementID,
					"count_operator":    &opStr,
					"count_assistant":   &asstStr,
				}
				if err := entryForm(st, smk.ViewProcedure, values).Run(); err != nil {
					return err
				}
				year = atoiOrZero(yearStr)
				countOperator = atoiOrZero(opStr)
				countAssistant = atoiOrZero(asstStr)
			}

			date, err := parseOptionalDate(dateStr)
			if err != nil {
				return err
			}

			procedure := &domain.Procedure{
				SpecializationID: spec.ID,
				Year:             year,
				Code:             code,
				Role:             domain.ProcedureRole(role),
				PerformingPerson: person,
				Location:         location,
				Date:             date,
				RequirementID:    requirementID,
				CountOperator:    countOperator,
				CountAssistant:   countAssistant,
			}

			res, err := app.Procedures.Add(ctx, procedure)
			if err != nil {
				return err
			}
			if !printResult(res) {
				return nil
			}

			fmt.Printf("Logged procedure (%s)\n", procedure.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&specFlag, "specialization", "", "Specialization ID")
	cmd.Flags().StringVar(&code, "code", "", "Procedure code (old generation)")
	cmd.Flags().StringVar(&role, "role", "A", "Role code A (operator) or B (assistant), old generation")
	cmd.Flags().StringVar(&person, "person", "", "Performing person")
	cmd.Flags().StringVar(&location, "location", "", "Where the procedure was performed")
	cmd.Flags().IntVar(&year, "year", 0, "Training year (old generation)")
	cmd.Flags().StringVar(&dateStr, "date", "", "Procedure date YYYY-MM-DD")
	cmd.Flags().StringVar(&requirementID, "requirement", "", "Catalogue requirement ID (new generation)")
	cmd.Flags().IntVar(&countOperator, "operator", 0, "Count performed as operator (new generation)")
	cmd.Flags().IntVar(&countAssistant, "assistant", 0, "Count performed as assistant (new generation)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in fields with an interactive form")

	return cmd
}

func newProcedureListCmd(app *App) *cobra.Command {
	var specFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List procedures",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			spec, err := resolveSpecialization(ctx, app, specFlag)
			if err != nil {
				return err
			}

			procedures, err := app.Procedures.ListBySpecialization(ctx, spec.ID)
			if err != nil {
				return err
			}
			if len(procedures) == 0 {
				fmt.Println("No procedures found.")
				return nil
			}

			headers := []string{"ID", "WHAT", "OPERATOR", "ASSISTANT", "WHEN", "SYNC"}
			rows := make([][]string, 0, len(procedures))
			for _, p := range procedures {
				what := p.Code
				if p.Version == domain.SMKNew {
					what = p.RequirementID
				}
				when := formatter.YearLabel(p.Year)
				if p.Date != nil {
					when = formatter.HumanDate(p.Date)
				}
				rows = append(rows, []string{
					formatter.TruncID(p.ID),
					truncate(what, 30),
					fmt.Sprintf("%d", p.OperatorCount()),
					fmt.Sprintf("%d", p.AssistantCount()),
					when,
					formatter.SyncPill(p.SyncStatus),
				})
			}

			fmt.Print(formatter.RenderBox("Procedures", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().StringVar(&specFlag, "specialization", "", "Specialization ID")

	return cmd
}

func newProcedureEditCmd(app *App) *cobra.Command {
	var person, location string
	var year, countOperator, countAssistant int

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a procedure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			current, err := app.Procedures.GetByID(ctx, args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("year") {
				year = current.Year
			}
			if !cmd.Flags().Changed("operator") {
				countOperator = current.CountOperator
			}
			if !cmd.Flags().Changed("assistant") {
				countAssistant = current.CountAssistant
			}
			if !cmd.Flags().Changed("person") {
				person = current.PerformingPerson
			}
			if !cmd.Flags().Changed("location") {
				location = current.Location
			}

			res, err := app.Procedures.Update(ctx, args[0], year, countOperator, countAssistant, person, location)
			if err != nil {
				return err
			}
			if !printResult(res) {
				return nil
			}

			fmt.Printf("Updated procedure %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Training year (old generation)")
	cmd.Flags().IntVar(&countOperator, "operator", 0, "Count performed as operator (new generation)")
	cmd.Flags().IntVar(&countAssistant, "assistant", 0, "Count performed as assistant (new generation)")
	cmd.Flags().StringVar(&person, "person", "", "Performing person")
	cmd.Flags().StringVar(&location, "location", "", "Where the procedure was performed")

	return cmd
}

func newProcedureRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a procedure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Procedures.Delete(context.Background(), args[0])
			if err != nil {
				return err
			}
			if !printResult(res) {
				return nil
			}
			fmt.Printf("Removed procedure %s\n", args[0])
			return nil
		},
	}
}
