package main

import (
	"fmt"
	"os"

	"github.com/adamwrona/rezydent/internal/catalogue"
	"github.com/adamwrona/rezydent/internal/cli"
	"github.com/adamwrona/rezydent/internal/config"
	"github.com/adamwrona/rezydent/internal/db"
	"github.com/adamwrona/rezydent/internal/repository"
	"github.com/adamwrona/rezydent/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	specRepo := repository.NewSQLiteSpecializationRepo(database)
	moduleRepo := repository.NewSQLiteModuleRepo(database)
	shiftRepo := repository.NewSQLiteShiftRepo(database)
	internshipRepo := repository.NewSQLiteInternshipRepo(database)
	procedureRepo := repository.NewSQLiteProcedureRepo(database)
	courseRepo := repository.NewSQLiteCourseRepo(database)
	activityRepo := repository.NewSQLiteActivityRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Requirement catalogue and the shared statistics cache
	source := catalogue.NewLoader(cfg.CatalogueDir)
	cache := service.NewStatsCache(service.DefaultStatsTTL)

	var observers []service.UseCaseObserver
	if os.Getenv("REZYDENT_DEBUG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Specializations: service.NewSpecializationService(specRepo, moduleRepo, internshipRepo, activityRepo, source, uow, cache, observers...),
		Shifts:          service.NewShiftService(shiftRepo, internshipRepo, specRepo, source, uow, cache, observers...),
		Internships:     service.NewInternshipService(internshipRepo, specRepo, source, uow, cache, observers...),
		Procedures:      service.NewProcedureService(procedureRepo, specRepo, source, uow, cache, observers...),
		Courses:         service.NewCourseService(courseRepo, specRepo, source, uow, cache, observers...),
		Activities:      service.NewActivityService(activityRepo, specRepo, uow, cache, observers...),
	}

	// Interactive forms are only offered on a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
