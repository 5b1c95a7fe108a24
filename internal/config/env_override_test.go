package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("EXPGEN_BASE_URL", "https://staging.example.com")
	t.Setenv("EXPGEN_MARKET", "seuk")
	t.Setenv("EXPGEN_LOG_LEVEL", "debug")
	t.Setenv("EXPGEN_PLAYWRIGHT_VERSION", "^1.50.0")
	t.Setenv("EXPGEN_SKIP_INSTALL", "true")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	if cfg.Defaults.BaseURL != "https://staging.example.com" {
		t.Errorf("expected BaseURL override, got %s", cfg.Defaults.BaseURL)
	}
	if cfg.Defaults.Market != "seuk" {
		t.Errorf("expected Market=seuk, got %s", cfg.Defaults.Market)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected Level=debug, got %s", cfg.Logging.Level)
	}
	if cfg.Playwright.Version != "^1.50.0" {
		t.Errorf("expected Version=^1.50.0, got %s", cfg.Playwright.Version)
	}
	if cfg.Install.Enabled {
		t.Error("expected EXPGEN_SKIP_INSTALL=true to disable install")
	}
}

func TestConfig_EnvOverrides_InvalidBoolIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("EXPGEN_SKIP_INSTALL", "maybe")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	if !cfg.Install.Enabled {
		t.Error("unparseable EXPGEN_SKIP_INSTALL should leave install enabled")
	}
}

func TestConfig_EnvBeatsFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("defaults:\n  market: SENA\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("EXPGEN_MARKET", "SEIB")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Defaults.Market != "SEIB" {
		t.Errorf("expected env to win, got %s", cfg.Defaults.Market)
	}
}

func TestLoadProject_DotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("EXPGEN_MARKET=SEF\nEXPGEN_SKIP_INSTALL=1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadProject(dir)
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}
	if cfg.Defaults.Market != "SEF" {
		t.Errorf("expected Market=SEF from .env, got %s", cfg.Defaults.Market)
	}
	if cfg.Install.Enabled {
		t.Error("expected install disabled from .env")
	}
}

func TestLoadProject_ExistingEnvWins(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("EXPGEN_MARKET=SEF\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("EXPGEN_MARKET", "SEG")

	cfg, err := LoadProject(dir)
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}
	if cfg.Defaults.Market != "SEG" {
		t.Errorf("expected process env to win over .env, got %s", cfg.Defaults.Market)
	}
}

func TestLoadProject_NoFiles(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadProject(t.TempDir())
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}
	if !cfg.Install.Enabled {
		t.Error("expected defaults")
	}
}
