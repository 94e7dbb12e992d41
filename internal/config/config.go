// Package config resolves runtime settings from an optional YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime settings.
type Config struct {
	// DBPath is the SQLite file holding logged realizations.
	DBPath string `yaml:"db_path"`
	// CatalogueDir holds the program requirement documents.
	CatalogueDir string `yaml:"catalogue_dir"`
}

// Load reads ~/.rezydent/config.yaml when present, fills in defaults, and
// applies REZYDENT_DB / REZYDENT_CATALOGUE overrides. A missing config file
// is not an error.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("finding home directory: %w", err)
	}
	return load(filepath.Join(home, ".rezydent", "config.yaml"), home)
}

func load(path, home string) (*Config, error) {
	cfg := &Config{
		DBPath:       filepath.Join(home, ".rezydent", "rezydent.db"),
		CatalogueDir: filepath.Join(home, ".rezydent", "catalogue"),
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if v := os.Getenv("REZYDENT_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("REZYDENT_CATALOGUE"); v != "" {
		cfg.CatalogueDir = v
	}
	return cfg, nil
}
