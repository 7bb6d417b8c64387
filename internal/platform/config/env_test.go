package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Addr string `env:"MERGINGTON_TEST_ADDR" envDefault:"localhost:9999"`
	Port int    `env:"MERGINGTON_TEST_PORT" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != "localhost:9999" {
		t.Fatalf("expected default addr localhost:9999, got %q", cfg.Addr)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvOverride(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("MERGINGTON_TEST_ADDR", "0.0.0.0:8000")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != "0.0.0.0:8000" {
		t.Fatalf("expected env addr 0.0.0.0:8000, got %q", cfg.Addr)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("MERGINGTON_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvNilTarget(t *testing.T) {
	if err := ParseEnv(nil); err == nil {
		t.Fatal("expected error for nil target")
	}
}
