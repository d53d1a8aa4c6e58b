package db

import (
	"embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"steamtracker/models"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type PostgresStore struct {
	DB *sqlx.DB
}

// NewPostgresStore opens one connection pool that lives for the whole run.
// Callers are expected to defer Close so the pool is released even when a
// later store call fails.
func NewPostgresStore(dsn string) (Store, error) {
	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return &PostgresStore{
		DB: db,
	}, nil
}

func (s *PostgresStore) ApplyMigrations(migrations embed.FS) error {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect(string(goose.DialectPostgres)); err != nil {
		return err
	}

	if err := goose.Up(s.DB.DB, "."); err != nil {
		return err
	}

	return nil
}

// EnsureGames seeds one row per tracked game. Existing rows are left
// untouched, so a renamed entry in the tracked list never updates the
// stored display name.
func (s *PostgresStore) EnsureGames(games []models.Game) error {
	for _, game := range games {
		_, err := s.DB.Exec(
			"INSERT INTO games (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING",
			game.ID,
			game.Name,
		)
		if err != nil {
			return fmt.Errorf("failed to seed game %d: %w", game.ID, err)
		}
	}
	return nil
}

func (s *PostgresStore) RecordObservation(obs models.Observation) error {
	_, err := s.DB.Exec(
		`INSERT INTO player_counts (
			game_id, timestamp, player_count,
			on_sale, discount_percent, original_price, final_price,
			estimated_owners
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		obs.GameID,
		obs.Timestamp,
		obs.PlayerCount,
		obs.OnSale,
		obs.DiscountPercent,
		obs.OriginalPrice,
		obs.FinalPrice,
		obs.EstimatedOwners,
	)
	if err != nil {
		return fmt.Errorf("failed to record observation for game %d: %w", obs.GameID, err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.DB.Close()
}
