package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the project-level config file, looked up in the target project root.
const FileName = ".expgen.yaml"

// Config holds all expgen configuration.
type Config struct {
	// Prompt defaults
	Defaults DefaultsConfig `yaml:"defaults"`

	// Selector scanner
	Scanner ScannerConfig `yaml:"scanner"`

	// Dependency versions written to package.json
	Playwright PlaywrightConfig `yaml:"playwright"`

	// Package manager install step
	Install InstallConfig `yaml:"install"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultsConfig seeds the interactive prompts.
type DefaultsConfig struct {
	BaseURL string `yaml:"base_url"`
	Market  string `yaml:"market"` // group or locale code, empty = no preselection
}

// ScannerConfig configures the selector scanner.
type ScannerConfig struct {
	Extensions []string `yaml:"extensions"`
	Workers    int      `yaml:"workers"` // 0 = GOMAXPROCS
}

// PlaywrightConfig configures the devDependencies added to package.json.
type PlaywrightConfig struct {
	Version string `yaml:"version"`
}

// InstallConfig configures dependency installation after generation.
type InstallConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			BaseURL: "https://www.samsung.com",
		},
		Scanner: ScannerConfig{
			Extensions: []string{".js", ".jsx", ".ts", ".tsx"},
		},
		Playwright: PlaywrightConfig{
			Version: "^1.49.0",
		},
		Install: InstallConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// LoadProject loads <dir>/.env into the environment (existing variables win)
// and then the project's .expgen.yaml.
func LoadProject(dir string) (*Config, error) {
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return Load(filepath.Join(dir, FileName))
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("EXPGEN_BASE_URL"); v != "" {
		c.Defaults.BaseURL = v
	}
	if v := os.Getenv("EXPGEN_MARKET"); v != "" {
		c.Defaults.Market = v
	}
	if v := os.Getenv("EXPGEN_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("EXPGEN_PLAYWRIGHT_VERSION"); v != "" {
		c.Playwright.Version = v
	}
	if v := os.Getenv("EXPGEN_SKIP_INSTALL"); v != "" {
		if skip, err := strconv.ParseBool(v); err == nil {
			c.Install.Enabled = !skip
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := ValidateBaseURL(c.Defaults.BaseURL); err != nil {
		return fmt.Errorf("invalid defaults.base_url: %w", err)
	}

	if c.Scanner.Workers < 0 {
		return fmt.Errorf("invalid scanner.workers: %d (must be >= 0)", c.Scanner.Workers)
	}
	for _, ext := range c.Scanner.Extensions {
		if strings.TrimPrefix(ext, ".") == "" {
			return fmt.Errorf("invalid scanner.extensions entry: %q", ext)
		}
	}

	if strings.TrimSpace(c.Playwright.Version) == "" {
		return fmt.Errorf("playwright.version must not be empty")
	}

	return c.Logging.Validate()
}

// ValidateBaseURL reports whether raw is an absolute http(s) URL.
func ValidateBaseURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("base URL is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("failed to parse URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%q is not an absolute http(s) URL", raw)
	}
	return nil
}
