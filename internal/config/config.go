// Package config provides application configuration.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// a .env file, then LEARNKIT_* environment variables. Command-line flags
// are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/learnkit/internal/binder"
	"github.com/abhisek/learnkit/internal/compare"
)

// Config holds all application configuration.
type Config struct {
	DBPath    string          `yaml:"db_path"`
	DataPath  string          `yaml:"data_path"` // store sales CSV; "" = synthetic data
	Pattern   string          `yaml:"pattern"`
	Lazy      bool            `yaml:"lazy"`
	LogLevel  string          `yaml:"log_level"`
	Tolerance ToleranceConfig `yaml:"tolerance"`
}

// ToleranceConfig is the comparator tolerance.
type ToleranceConfig struct {
	Abs float64 `yaml:"abs"`
	Rel float64 `yaml:"rel"`
}

// Compare returns the tolerance as a comparator value.
func (t ToleranceConfig) Compare() compare.Tolerance {
	return compare.Tolerance{Abs: t.Abs, Rel: t.Rel}
}

// Default returns the built-in configuration. dbPath is the fallback
// database location.
func Default(dbPath string) *Config {
	tol := compare.DefaultTolerance()
	return &Config{
		DBPath:    dbPath,
		Pattern:   binder.DefaultPattern,
		LogLevel:  "warn",
		Tolerance: ToleranceConfig{Abs: tol.Abs, Rel: tol.Rel},
	}
}

// Load builds the configuration. path names an optional YAML file; a
// missing file is an error only when path is non-empty. envFile names an
// optional .env file; "" means ".env" in the working directory, and a
// missing file is ignored.
func Load(dbPath, path, envFile string) (*Config, error) {
	cfg := Default(dbPath)

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if envFile == "" {
		envFile = ".env"
	}
	// godotenv never overrides variables already set in the environment.
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.DBPath = getEnv("LEARNKIT_DB", c.DBPath)
	c.DataPath = getEnv("LEARNKIT_DATA", c.DataPath)
	c.Pattern = getEnv("LEARNKIT_PATTERN", c.Pattern)
	c.Lazy = getEnvBool("LEARNKIT_LAZY", c.Lazy)
	c.LogLevel = getEnv("LEARNKIT_LOG_LEVEL", c.LogLevel)
	c.Tolerance.Abs = getEnvFloat("LEARNKIT_TOLERANCE_ABS", c.Tolerance.Abs)
	c.Tolerance.Rel = getEnvFloat("LEARNKIT_TOLERANCE_REL", c.Tolerance.Rel)
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("LEARNKIT_DB cannot be empty")
	}
	if c.Tolerance.Abs < 0 {
		return fmt.Errorf("tolerance.abs must be >= 0")
	}
	if c.Tolerance.Rel < 0 {
		return fmt.Errorf("tolerance.rel must be >= 0")
	}
	if !strings.Contains(c.Pattern, binder.Slot) {
		return fmt.Errorf("pattern %q must contain %s", c.Pattern, binder.Slot)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvFloat(key string, fallback float64) float64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fallback
	}
	return f
}
