// Package config loads server configuration from treestore.json with
// environment overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// ConfigFileName is the name of the configuration file.
const ConfigFileName = "treestore.json"

const (
	// DefaultAddr is the default listen address.
	DefaultAddr = "localhost:7420"

	// DefaultLogLevel is the default slog level name.
	DefaultLogLevel = "info"

	// DefaultMetricsNamespace is the default Prometheus namespace.
	DefaultMetricsNamespace = "treestore"
)

// Config is the complete treestore.json configuration. Environment variables
// override file values.
type Config struct {
	// Addr is the host:port the server listens on.
	Addr string `json:"addr,omitempty" env:"TREESTORE_ADDR"`

	// SeedFile is a JSON file holding the store's initial state. Empty
	// means start from an empty object.
	SeedFile string `json:"seed_file,omitempty" env:"TREESTORE_SEED_FILE"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level,omitempty" env:"TREESTORE_LOG_LEVEL"`

	// MetricsNamespace is the Prometheus namespace for store collectors.
	MetricsNamespace string `json:"metrics_namespace,omitempty" env:"TREESTORE_METRICS_NAMESPACE"`
}

// defaults returns a Config with every field at its default.
func defaults() Config {
	return Config{
		Addr:             DefaultAddr,
		LogLevel:         DefaultLogLevel,
		MetricsNamespace: DefaultMetricsNamespace,
	}
}

// Load reads treestore.json from dir (if present), applies environment
// overrides, and returns the result. A missing file is not an error; a
// malformed one is.
func Load(dir string) (*Config, error) {
	cfg := defaults()

	path := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Defaults + env only
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}
