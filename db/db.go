package db

import (
	"embed"

	"steamtracker/models"
)

type Store interface {
	ApplyMigrations(migrations embed.FS) error
	EnsureGames(games []models.Game) error
	RecordObservation(obs models.Observation) error
	Close() error
}
