package cli

import (
	"github.com/adamwrona/rezydent/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Specializations service.SpecializationService
	Shifts          service.ShiftService
	Internships     service.InternshipService
	Procedures      service.ProcedureService
	Courses         service.CourseService
	Activities      service.ActivityService

	// IsInteractive reports whether stdin is a terminal; interactive forms
	// are only offered when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "rezydent" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "rezydent",
		Short: "Specialization training tracker for the SMK system",
	}

	root.AddCommand(
		newSpecializationCmd(app),
		newShiftCmd(app),
		newInternshipCmd(app),
		newProcedureCmd(app),
		newCourseCmd(app),
		newActivityCmd(app),
		newStatusCmd(app),
	)

	return root
}
