package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"steamtracker/config"
	"steamtracker/db"
	"steamtracker/jobs"
	"steamtracker/migrations"
	"steamtracker/utils"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Tracking run aborted", slog.String("stack", err.Error()))
		os.Exit(1)
	}
}

func run() error {

	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found. Using environment as-is.")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.GetLogLevel(),
	}))
	slog.SetDefault(logger)

	store, err := db.NewPostgresStore(cfg.DSN())
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.ApplyMigrations(migrations.GetMigrations()); err != nil {
		return err
	}

	if err := store.EnsureGames(config.TrackedGames()); err != nil {
		return err
	}

	client := utils.NewHTTPClient()

	return jobs.TrackGames(store, client, cfg.Steam.APIKey, config.TrackedGames())
}
