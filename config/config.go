// Package config loads pokedex settings from an optional YAML file and
// environment variables using cleanenv.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Store backends.
const (
	StoreSQLite = "sqlite"
	StoreFile   = "file"
)

// Output formats.
const (
	FormatTable = "table"
	FormatText  = "text"
)

// Config is the root application configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Store   StoreConfig   `yaml:"store"`
	Cache   CacheConfig   `yaml:"cache"`
	Log     LogConfig     `yaml:"log"`
	Display DisplayConfig `yaml:"display"`
}

// APIConfig holds PokéAPI client settings.
type APIConfig struct {
	BaseURL   string        `yaml:"base_url"   env:"POKEDEX_API_URL"        env-default:"https://pokeapi.co/api/v2"`
	Timeout   time.Duration `yaml:"timeout"    env:"POKEDEX_API_TIMEOUT"    env-default:"10s"`
	RateLimit float64       `yaml:"rate_limit" env:"POKEDEX_API_RATE_LIMIT" env-default:"5"`
}

// StoreConfig holds local persistence settings. Empty paths resolve to
// locations under ~/.pokedex.
type StoreConfig struct {
	Backend string `yaml:"backend"  env:"POKEDEX_STORE"    env-default:"sqlite"`
	DBPath  string `yaml:"db_path"  env:"POKEDEX_DB"`
	DataDir string `yaml:"data_dir" env:"POKEDEX_DATA_DIR"`
}

// CacheConfig holds lookup cache settings. A zero TTL disables the cache.
type CacheConfig struct {
	TTL time.Duration `yaml:"ttl" env:"POKEDEX_CACHE_TTL" env-default:"24h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level" env:"POKEDEX_LOG_LEVEL" env-default:"warn"`
}

// DisplayConfig holds terminal output settings.
type DisplayConfig struct {
	Format  string `yaml:"format"   env:"POKEDEX_FORMAT"   env-default:"table"`
	NoColor bool   `yaml:"no_color" env:"POKEDEX_NO_COLOR" env-default:"false"`
}

// HomeDir returns the pokedex directory, ~/.pokedex, or "." when the
// home directory cannot be determined.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".pokedex")
}

// resolvePaths fills empty store paths with defaults under dir.
func (c *Config) resolvePaths(dir string) {
	if c.Store.DBPath == "" {
		c.Store.DBPath = filepath.Join(dir, "pokedex.db")
	}
	if c.Store.DataDir == "" {
		c.Store.DataDir = filepath.Join(dir, "data")
	}
}
