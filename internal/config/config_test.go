package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noEnvFile points Load at a .env file that does not exist.
func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"LEARNKIT_DB", "LEARNKIT_DATA", "LEARNKIT_PATTERN", "LEARNKIT_LAZY",
		"LEARNKIT_LOG_LEVEL", "LEARNKIT_TOLERANCE_ABS", "LEARNKIT_TOLERANCE_REL",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("/tmp/learnkit.db", "", noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/learnkit.db", cfg.DBPath)
	assert.Equal(t, "q_{n}", cfg.Pattern)
	assert.Equal(t, "", cfg.DataPath)
	assert.False(t, cfg.Lazy)
	assert.Equal(t, 1e-8, cfg.Tolerance.Abs)
	assert.Equal(t, 1e-5, cfg.Tolerance.Rel)
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "learnkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data_path: /data/train.csv
pattern: ex_{n}
lazy: true
tolerance:
  abs: 0.001
  rel: 0
`), 0o644))

	cfg, err := Load("/tmp/learnkit.db", path, noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "/data/train.csv", cfg.DataPath)
	assert.Equal(t, "ex_{n}", cfg.Pattern)
	assert.True(t, cfg.Lazy)
	assert.Equal(t, 0.001, cfg.Tolerance.Abs)
	assert.Equal(t, 0.0, cfg.Tolerance.Rel)
	assert.Equal(t, "/tmp/learnkit.db", cfg.DBPath, "unset keys keep their defaults")
}

func TestLoad_MissingYAMLFile(t *testing.T) {
	clearEnv(t)
	_, err := Load("/tmp/learnkit.db", filepath.Join(t.TempDir(), "nope.yaml"), noEnvFile(t))
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "learnkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pattern: ex_{n}\n"), 0o644))

	t.Setenv("LEARNKIT_PATTERN", "task{n}")
	t.Setenv("LEARNKIT_TOLERANCE_ABS", "0.5")
	t.Setenv("LEARNKIT_LAZY", "yes")

	cfg, err := Load("/tmp/learnkit.db", path, noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "task{n}", cfg.Pattern)
	assert.Equal(t, 0.5, cfg.Tolerance.Abs)
	assert.True(t, cfg.Lazy)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("LEARNKIT_DATA=/from/dotenv.csv\n"), 0o644))
	// godotenv sets process variables; register cleanup through t.Setenv.
	t.Setenv("LEARNKIT_DATA", "")
	os.Unsetenv("LEARNKIT_DATA")

	cfg, err := Load("/tmp/learnkit.db", "", envFile)
	require.NoError(t, err)
	assert.Equal(t, "/from/dotenv.csv", cfg.DataPath)
}

func TestLoad_InvalidEnvValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("LEARNKIT_TOLERANCE_REL", "not-a-number")
	t.Setenv("LEARNKIT_LAZY", "maybe")

	cfg, err := Load("/tmp/learnkit.db", "", noEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, 1e-5, cfg.Tolerance.Rel)
	assert.False(t, cfg.Lazy)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty db", func(c *Config) { c.DBPath = "" }, true},
		{"negative abs", func(c *Config) { c.Tolerance.Abs = -1 }, true},
		{"negative rel", func(c *Config) { c.Tolerance.Rel = -0.1 }, true},
		{"zero tolerance", func(c *Config) { c.Tolerance = ToleranceConfig{} }, false},
		{"pattern without slot", func(c *Config) { c.Pattern = "q_" }, true},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"upper-case log level", func(c *Config) { c.LogLevel = "DEBUG" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default("/tmp/learnkit.db")
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestToleranceCompare(t *testing.T) {
	tol := ToleranceConfig{Abs: 0.25, Rel: 0.5}.Compare()
	assert.Equal(t, 0.25, tol.Abs)
	assert.Equal(t, 0.5, tol.Rel)
}
