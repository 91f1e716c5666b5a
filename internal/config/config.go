// Package config handles lotcat configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the few settings lotcat needs. Precedence, lowest to
// highest: built-in defaults, the YAML config file, environment variables
// (a .env file in the working directory is loaded first).
type Config struct {
	DBPath string `yaml:"db_path,omitempty"` // Path to the SQLite catalog database
	Addr   string `yaml:"addr,omitempty"`    // HTTP listen address for serve
}

const (
	DefaultDBPath = "lotcat.db"
	DefaultAddr   = ":3000"

	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "lotcat"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"

	// EnvDBPath and EnvAddr override the file-level settings.
	EnvDBPath = "LOTCAT_DB"
	EnvAddr   = "LOTCAT_ADDR"
)

// Path returns the global config file path. Respects XDG_CONFIG_HOME,
// defaults to ~/.config/lotcat/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Load reads configuration from the default location. A missing config file
// is not an error; defaults apply.
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads configuration from an explicit file path, then applies
// environment overrides.
func LoadFrom(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBPath: DefaultDBPath,
		Addr:   DefaultAddr,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
			if cfg.DBPath == "" {
				cfg.DBPath = DefaultDBPath
			}
			if cfg.Addr == "" {
				cfg.Addr = DefaultAddr
			}
		}
	}

	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Addr = v
	}

	return cfg, nil
}
