package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr string     `env:"HTTP_ADDR" envDefault:":8080"`
	DBPath   string     `env:"DB_PATH" envDefault:"data/tycoon.db"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`

	// AdminPassword enables the admin surface (boost grants, save
	// inspection, reset). Empty disables those routes entirely.
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// TickInterval drives idle income and achievement re-checks;
	// SaveInterval drives the autosave flush.
	TickInterval time.Duration `env:"TICK_INTERVAL" envDefault:"1s"`
	SaveInterval time.Duration `env:"SAVE_INTERVAL" envDefault:"20s"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
