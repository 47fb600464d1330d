package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/rsoares/roadmap/internal/cli"
	"github.com/rsoares/roadmap/internal/db"
	"github.com/rsoares/roadmap/internal/repository"
	"github.com/rsoares/roadmap/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.roadmap/roadmap.db
	dbPath := os.Getenv("ROADMAP_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".roadmap", "roadmap.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	itemRepo := repository.NewSQLiteItemRepo(database)
	areaRepo := repository.NewSQLiteAreaRepo(database)
	teamRepo := repository.NewSQLiteTeamRepo(database)
	milestoneRepo := repository.NewSQLiteMilestoneRepo(database)
	alertRepo := repository.NewSQLiteAlertRepo(database)
	issueRepo := repository.NewSQLiteTrackerIssueRepo(database)
	configRepo := repository.NewSQLiteTrackerConfigRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Items:      service.NewItemService(itemRepo, uow),
		Areas:      service.NewAreaService(areaRepo),
		Teams:      service.NewTeamService(teamRepo),
		Milestones: service.NewMilestoneService(milestoneRepo),
		Alerts:     service.NewAlertService(alertRepo),
		Dashboard:  service.NewDashboardService(itemRepo, alertRepo),
		Sync:       service.NewSyncService(configRepo, issueRepo, itemRepo),
	}

	rootCmd := cli.NewRootCmd(app)

	// With no subcommand on an interactive terminal, open the TUI.
	args := os.Args[1:]
	if len(args) == 0 && (isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) {
		args = []string{"browse"}
	}
	rootCmd.SetArgs(args)

	return rootCmd.Execute()
}
