// meta/meta.go
package meta

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the session settings read from the environment.
type Config struct {
	// Seed for dice and mission draws; 0 seeds from the clock.
	Seed uint64 `env:"WAR_SEED" envDefault:"0"`
	// LooseAttacks lets a territory with a single troop attack.
	LooseAttacks bool `env:"WAR_LOOSE_ATTACKS" envDefault:"false"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE"`
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
