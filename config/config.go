package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/golobby/config/v3"
	"github.com/golobby/config/v3/pkg/feeder"

	"steamtracker/models"
)

type Config struct {
	Database DatabaseConfig
	Steam    SteamConfig
	Tracker  TrackerConfig
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST"`
	Database string `env:"DB_DATABASE"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Port     string `env:"DB_PORT"`
}

type SteamConfig struct {
	APIKey string `env:"STEAM_API_KEY"`
}

type TrackerConfig struct {
	LogLevel string `env:"LOG_LEVEL"`
}

func Load() (*Config, error) {
	c := &Config{}
	if err := config.New().AddFeeder(feeder.Env{}).AddStruct(c).Feed(); err != nil {
		return nil, err
	}
	if c.Database.Port == "" {
		c.Database.Port = "5432"
	}
	return c, nil
}

// DSN builds a postgres connection string. Nothing is validated here:
// a missing host or credential surfaces as a connection failure later on.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
	)
}

func (c *Config) GetLogLevel() slog.Leveler {
	logLevel := strings.ToLower(c.Tracker.LogLevel)
	if logLevel == "error" {
		return slog.LevelError
	}
	if logLevel == "warning" {
		return slog.LevelWarn
	}
	if logLevel == "debug" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// TrackedGames is the fixed set of titles this instance follows. A slice
// rather than a map so every run visits games in the same order.
func TrackedGames() []models.Game {
	return []models.Game{
		{ID: 730, Name: "Counter-Strike 2"},
		{ID: 570, Name: "Dota 2"},
		{ID: 440, Name: "Team Fortress 2"},
		{ID: 578080, Name: "PUBG"},
		{ID: 1172470, Name: "Apex Legends"},
		{ID: 2767030, Name: "Marvel Rivals"},
	}
}
