package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Server.Port)
	}
	if len(cfg.Symbols.Predefined) != 10 || cfg.Symbols.Predefined[0] != "VOO" {
		t.Errorf("unexpected default universe: %v", cfg.Symbols.Predefined)
	}
	if cfg.Alpaca.BaseURL != "https://data.alpaca.markets" {
		t.Errorf("unexpected default base url: %q", cfg.Alpaca.BaseURL)
	}
	if cfg.Schedule.DailyCron != "0 0 5 * * *" {
		t.Errorf("unexpected default cron: %q", cfg.Schedule.DailyCron)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server:\n  port: \"9090\"\nsymbols:\n  predefined: [VOO, SPY]\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SYMBOLS", "AAPL, MSFT")
	t.Setenv("ALPACA_API_KEY", "key-from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("expected port from file, got %q", cfg.Server.Port)
	}
	if len(cfg.Symbols.Predefined) != 2 || cfg.Symbols.Predefined[0] != "AAPL" {
		t.Errorf("env override should win: %v", cfg.Symbols.Predefined)
	}
	if cfg.Alpaca.APIKey != "key-from-env" {
		t.Errorf("expected api key from env, got %q", cfg.Alpaca.APIKey)
	}
}

func TestValidate_BlankSymbol(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Port = "8080"
	cfg.Symbols.Predefined = []string{"VOO", "  "}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for blank symbol")
	}
}
