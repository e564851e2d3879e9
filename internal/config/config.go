package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Environments.
const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// Config holds process configuration, read from the environment.
type Config struct {
	Env       string `env:"BAZAAR_ENV" env-default:"local"`
	Addr      string `env:"BAZAAR_ADDR" env-default:":8080"`
	StaticDir string `env:"BAZAAR_STATIC_DIR" env-default:"static"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return &cfg, nil
}
