package config

import (
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	HTTP struct {
		Port string `yaml:"port" env:"TESTSVC_HTTP_PORT"`
	} `yaml:"http"`
	Database struct {
		Host string `yaml:"host" env:"TESTSVC_DB_HOST"`
		Port int    `yaml:"port" env:"TESTSVC_DB_PORT"`
	} `yaml:"database"`
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	cfg := &testConfig{}
	cfg.HTTP.Port = "8000"
	cfg.Database.Host = "postgres"
	cfg.Database.Port = 5432

	if err := LoadConfig(cfg); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Port != "8000" || cfg.Database.Host != "postgres" || cfg.Database.Port != 5432 {
		t.Fatalf("defaults clobbered: %+v", cfg)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("TESTSVC_HTTP_PORT", "9999")
	t.Setenv("TESTSVC_DB_PORT", "6543")

	cfg := &testConfig{}
	cfg.HTTP.Port = "8000"
	cfg.Database.Port = 5432

	if err := LoadConfig(cfg); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Port != "9999" {
		t.Fatalf("string env override not applied: %q", cfg.HTTP.Port)
	}
	if cfg.Database.Port != 6543 {
		t.Fatalf("int env override not applied: %d", cfg.Database.Port)
	}
}

func TestLoadConfigInvalidEnvValue(t *testing.T) {
	t.Setenv("TESTSVC_DB_PORT", "not-a-number")

	cfg := &testConfig{}
	if err := LoadConfig(cfg); err == nil {
		t.Fatalf("expected parse error for non-numeric port")
	}
}

func TestLoadConfigYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("http:\n  port: \"7777\"\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)

	cfg := &testConfig{}
	if err := LoadConfig(cfg); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Port != "7777" {
		t.Fatalf("yaml value not applied: %q", cfg.HTTP.Port)
	}
}
