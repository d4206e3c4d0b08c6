// internal/config/env.go
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env — настройки, переопределяемые переменными окружения.
type Env struct {
	Seed          int64  `env:"DUEL_SEED" envDefault:"0"`
	ScenarioPath  string `env:"DUEL_SCENARIO" envDefault:"assets/data/scenario.yaml"`
	StartInBattle bool   `env:"DUEL_START_IN_BATTLE" envDefault:"false"`
	AutoPlay      bool   `env:"DUEL_AUTOPLAY" envDefault:"true"`
}

// ParseEnv загружает конфигурацию из переменных окружения.
func ParseEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
