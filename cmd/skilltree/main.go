package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/Morris-Command-Center/agentic-skill-tree/internal/catalog"
	"github.com/Morris-Command-Center/agentic-skill-tree/internal/cli"
	"github.com/Morris-Command-Center/agentic-skill-tree/internal/db"
	"github.com/Morris-Command-Center/agentic-skill-tree/internal/repository"
	"github.com/Morris-Command-Center/agentic-skill-tree/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.skilltree/progress.db
	dbPath := os.Getenv("SKILLTREE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".skilltree", "progress.db")
	}

	// Determine data directory holding the skill and challenge definitions.
	dataDir := os.Getenv("SKILLTREE_DATA")
	if dataDir == "" {
		dataDir = "./data"
	}

	port := os.Getenv("SKILLTREE_PORT")
	if port == "" {
		port = "8000"
	}

	cat, err := catalog.Load(dataDir)
	if err != nil {
		return fmt.Errorf("loading catalog from %s: %w", dataDir, err)
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	progressRepo := repository.NewSQLiteProgressRepo(database)
	completionRepo := repository.NewSQLiteCompletionRepo(database)
	achievementRepo := repository.NewSQLiteAchievementRepo(database)

	app := &cli.App{
		Catalog:     cat,
		Progression: service.NewProgressionService(cat, progressRepo, completionRepo, achievementRepo),
		Stats:       service.NewStatsService(cat, progressRepo, completionRepo),
		Logger:      log.New(os.Stderr, "", log.LstdFlags),
		HTTPPort:    port,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
