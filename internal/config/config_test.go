package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Addr != DefaultAddr {
		t.Errorf("Addr = %q, want %q", cfg.Addr, DefaultAddr)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
	if cfg.MetricsNamespace != DefaultMetricsNamespace {
		t.Errorf("MetricsNamespace = %q", cfg.MetricsNamespace)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	content := `{"addr": "0.0.0.0:9000", "seed_file": "seed.json"}`
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Addr != "0.0.0.0:9000" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.SeedFile != "seed.json" {
		t.Errorf("SeedFile = %q", cfg.SeedFile)
	}
	// Unset fields keep their defaults
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q, want default", cfg.LogLevel)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	content := `{"addr": "0.0.0.0:9000"}`
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("TREESTORE_ADDR", "127.0.0.1:7777")
	t.Setenv("TREESTORE_LOG_LEVEL", "debug")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Addr != "127.0.0.1:7777" {
		t.Errorf("env must override file: Addr = %q", cfg.Addr)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("expected an error for a malformed config file")
	}
}
