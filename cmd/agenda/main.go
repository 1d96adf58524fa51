package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/deyby01/agenda/internal/cli"
	"github.com/deyby01/agenda/internal/db"
	"github.com/deyby01/agenda/internal/repository"
	"github.com/deyby01/agenda/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.agenda/agenda.db
	dbPath := os.Getenv("AGENDA_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".agenda", "agenda.db")
	}

	// Disable color when stdout is not a terminal (lipgloss honors NO_COLOR).
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		os.Setenv("NO_COLOR", "1")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	taskRepo := repository.NewSQLiteTaskRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	notificationRepo := repository.NewSQLiteNotificationRepo(database)

	// Wire services
	app := &cli.App{
		Tasks:     service.NewTaskService(taskRepo, projectRepo),
		Projects:  service.NewProjectService(projectRepo),
		Notify:    service.NewNotifyService(taskRepo, projectRepo, notificationRepo),
		Dashboard: service.NewDashboardService(taskRepo, projectRepo, notificationRepo),
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
