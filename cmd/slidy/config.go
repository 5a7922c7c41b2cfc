package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/benwh1/slidy-cli/internal"
)

// Config is the optional YAML configuration file. Everything has a
// working default; the file only exists to relocate the cache directory
// or to point the solver cache at a shared Redis table store.
type Config struct {
	// CacheDir overrides the platform cache directory for lookup tables.
	CacheDir string `yaml:"cache_dir"`
	// Redis, when set, replaces the file store with a Redis table store.
	Redis *internal.RedisConfig `yaml:"redis"`
}

// loadConfig reads the config file at path, or the default location when
// path is empty. A missing file is not an error.
func loadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		base, err := os.UserConfigDir()
		if err != nil {
			return &Config{}, nil
		}
		path = filepath.Join(base, "slidy-cli", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}
