// Package config читает конфигурацию сервиса из переменных окружения.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config — конфигурация сервиса. Ёмкость ростера и сроки жизни приглашений —
// это политика, а не константы кода, поэтому они задаются окружением.
type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`
	DBDSN    string `env:"DB_DSN,required"`

	RosterCapacity  int           `env:"ROSTER_CAPACITY" envDefault:"6"`
	LinkTTL         time.Duration `env:"INVITE_LINK_TTL" envDefault:"24h"`
	NominationTTL   time.Duration `env:"INVITE_NOMINATION_TTL" envDefault:"48h"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Load парсит конфигурацию из окружения и валидирует значения политики.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.RosterCapacity < 1 {
		return Config{}, fmt.Errorf("ROSTER_CAPACITY must be positive, got %d", cfg.RosterCapacity)
	}
	return cfg, nil
}
