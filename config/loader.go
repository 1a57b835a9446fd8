package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML file path is taken from POKEDEX_CONFIG (fallback
// ~/.pokedex/config.yaml). If the file does not exist and POKEDEX_CONFIG
// was not set explicitly, configuration comes from ENV + defaults only.
func Load() (*Config, error) {
	path := os.Getenv("POKEDEX_CONFIG")
	explicit := path != ""
	if !explicit {
		path = filepath.Join(HomeDir(), "config.yaml")
	}
	return LoadFile(path, explicit)
}

// LoadFile is like Load but reads the given path. When required is true a
// missing file is an error.
func LoadFile(path string, required bool) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if required {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	cfg.resolvePaths(HomeDir())

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
