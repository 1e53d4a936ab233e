package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load, after .env has been applied.
const (
	EnvKind     = "STAIRGEN_KIND"
	EnvSides    = "STAIRGEN_SIDES"
	EnvOutput   = "STAIRGEN_OUTPUT"
	EnvFormat   = "STAIRGEN_FORMAT"
	EnvLogLevel = "STAIRGEN_LOG_LEVEL"
	EnvLogFile  = "STAIRGEN_LOG_FILE"
)

// Load loads configuration with priority: defaults < file < env < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// .env is optional; variables already set in the process win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	// Apply CLI flags (highest priority)
	if err := applyFlags(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./stairgen.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Stairgen")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Stairgen")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "stairgen")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "stairgen")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// applyEnv applies STAIRGEN_* overrides.
func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvKind); v != "" {
		cfg.Stairs.Kind = v
	}
	if v := os.Getenv(EnvSides); v != "" {
		sides, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing %s=%q: %w", EnvSides, v, err)
		}
		cfg.Stairs.Sides = sides
	}
	if v := os.Getenv(EnvOutput); v != "" {
		cfg.Output.Path = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Logging.LogFile = v
	}
	return nil
}
