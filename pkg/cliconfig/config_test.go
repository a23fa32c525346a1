package cliconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPtr(v uint64) *uint64 { return &v }

func countPtr(v int) *int { return &v }

func TestCLIConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *CLIConfig)
		wantErr string
	}{
		{"valid defaults", func(c *CLIConfig) {}, ""},
		{"valid custom", func(c *CLIConfig) {
			c.Locale = "fr-FR"
			c.Count = countPtr(50)
			c.Format = FormatYAML
			c.LogLevel = "DEBUG"
			c.LogFormat = "json"
		}, ""},
		{"bad locale", func(c *CLIConfig) { c.Locale = "123" }, "locale"},
		{"count zero", func(c *CLIConfig) { c.Count = countPtr(0) }, "count 0 is out of range"},
		{"count unset", func(c *CLIConfig) { c.Count = nil }, ""},
		{"count too high", func(c *CLIConfig) { c.Count = countPtr(MaxCount + 1) }, "is out of range"},
		{"bad format", func(c *CLIConfig) { c.Format = "xml" }, `format "xml" is not supported`},
		{"bad log level", func(c *CLIConfig) { c.LogLevel = "trace" }, "unknown log level"},
		{"bad log format", func(c *CLIConfig) { c.LogFormat = "logfmt" }, `logFormat "logfmt"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefault()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewDefault(t *testing.T) {
	cfg := NewDefault()
	assert.Equal(t, "en_US", cfg.Locale)
	assert.Equal(t, DefaultCount, cfg.CountOrDefault())
	require.NotNil(t, cfg.Count)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Nil(t, cfg.Seed)
	assert.Equal(t, SourceDefault, cfg.Sources["locale"])
	assert.NotContains(t, cfg.Sources, "seed")
}

func TestMergeConfig(t *testing.T) {
	target := NewDefault()
	MergeConfig(target, &CLIConfig{Locale: "de_DE", Seed: seedPtr(0)}, SourceLocal)

	assert.Equal(t, "de_DE", target.Locale)
	require.NotNil(t, target.Seed)
	assert.Equal(t, uint64(0), *target.Seed)
	assert.Equal(t, SourceLocal, target.Sources["locale"])
	assert.Equal(t, SourceLocal, target.Sources["seed"])
	assert.Equal(t, SourceDefault, target.Sources["format"])

	MergeConfig(target, nil, SourceFlag)
	assert.Equal(t, "de_DE", target.Locale)
}

func TestMergeConfig_ExplicitZeroCountReachesValidate(t *testing.T) {
	target := NewDefault()
	MergeConfig(target, &CLIConfig{Count: countPtr(0)}, SourceFlag)

	assert.Equal(t, 0, target.CountOrDefault())
	assert.Equal(t, SourceFlag, target.Sources["count"])
	assert.ErrorContains(t, target.Validate(), "count 0 is out of range")

	MergeConfig(target, &CLIConfig{Locale: "fr_FR"}, SourceEnv)
	assert.Equal(t, 0, target.CountOrDefault(), "an unset count must not reset an explicit one")
}

// =============================================================================
// File loading
// =============================================================================

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid", func(t *testing.T) {
		path := filepath.Join(dir, "ok.yaml")
		writeFile(t, path, "locale: es_ES\nseed: 42\ncount: 3\nformat: json\n")
		cfg, err := LoadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, "es_ES", cfg.Locale)
		require.NotNil(t, cfg.Seed)
		assert.Equal(t, uint64(42), *cfg.Seed)
		assert.Equal(t, 3, cfg.CountOrDefault())
		assert.Equal(t, "json", cfg.Format)
	})

	t.Run("empty", func(t *testing.T) {
		path := filepath.Join(dir, "empty.yaml")
		writeFile(t, path, "")
		cfg, err := LoadConfigFile(path)
		require.NoError(t, err)
		assert.Empty(t, cfg.Locale)
	})

	t.Run("unknown key", func(t *testing.T) {
		path := filepath.Join(dir, "unknown.yaml")
		writeFile(t, path, "locale: en_US\nport: 4280\n")
		_, err := LoadConfigFile(path)
		var ce *ConfigError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, path, ce.Path)
		assert.Equal(t, 2, ce.Line)
		assert.Contains(t, ce.Error(), "port")
	})

	t.Run("syntax error", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		writeFile(t, path, "locale: [en_US\n")
		_, err := LoadConfigFile(path)
		var ce *ConfigError
		require.True(t, errors.As(err, &ce))
	})

	t.Run("missing", func(t *testing.T) {
		_, err := LoadConfigFile(filepath.Join(dir, "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLoadAll_Precedence(t *testing.T) {
	configHome := t.TempDir()
	work := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{EnvLocale, EnvSeed, EnvCount, EnvFormat, EnvLogLevel, EnvLogFormat} {
		t.Setenv(key, "")
	}
	t.Chdir(work)

	writeFile(t, filepath.Join(configHome, GlobalConfigDir, "config.yaml"), "locale: fr_FR\ncount: 5\nformat: yaml\n")
	writeFile(t, filepath.Join(work, ".fakerhelperrc.yaml"), "count: 7\nseed: 11\n")
	t.Setenv(EnvFormat, "json")

	cfg, err := LoadAll()
	require.NoError(t, err)

	assert.Equal(t, "fr_FR", cfg.Locale)
	assert.Equal(t, SourceGlobal, cfg.Sources["locale"])
	assert.Equal(t, 7, cfg.CountOrDefault())
	assert.Equal(t, SourceLocal, cfg.Sources["count"])
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(11), *cfg.Seed)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, SourceEnv, cfg.Sources["format"])
	assert.Equal(t, SourceDefault, cfg.Sources["logLevel"])
}

func TestLoadAll_BrokenFileFails(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	work := t.TempDir()
	t.Chdir(work)
	writeFile(t, filepath.Join(work, ".fakerhelperrc.yml"), "seed: -1\n")

	_, err := LoadAll()
	var ce *ConfigError
	assert.True(t, errors.As(err, &ce))
}

func TestLoadEnvConfig(t *testing.T) {
	t.Setenv(EnvLocale, "en_GB")
	t.Setenv(EnvSeed, "7")
	t.Setenv(EnvCount, "")
	t.Setenv(EnvFormat, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogFormat, "")

	cfg := NewDefault()
	require.NoError(t, LoadEnvConfig(cfg))
	assert.Equal(t, "en_GB", cfg.Locale)
	assert.Equal(t, uint64(7), *cfg.Seed)
	assert.Equal(t, SourceEnv, cfg.Sources["seed"])
	assert.Equal(t, SourceDefault, cfg.Sources["count"])

	t.Setenv(EnvSeed, "minus one")
	assert.Error(t, LoadEnvConfig(NewDefault()))

	t.Setenv(EnvSeed, "")
	t.Setenv(EnvCount, "many")
	assert.Error(t, LoadEnvConfig(NewDefault()))

	t.Setenv(EnvCount, "0")
	zero := NewDefault()
	require.NoError(t, LoadEnvConfig(zero))
	assert.Equal(t, 0, zero.CountOrDefault())
	assert.Error(t, zero.Validate())
}

func TestLoggingConfig(t *testing.T) {
	cfg := NewDefault()
	cfg.LogLevel = "Error"
	cfg.LogFormat = "json"
	lc := cfg.LoggingConfig()
	assert.Equal(t, "ERROR", lc.Level.String())
	assert.Equal(t, "json", string(lc.Format))
}
