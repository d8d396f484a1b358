package config //nolint:testpackage // validates unexported defaults.

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.True(t, cfg.Output.Color)
	assert.Equal(t, "git", cfg.Git.Binary)
	assert.Equal(t, time.Duration(0), cfg.Git.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diffloc.yaml")
	content := []byte("output:\n  format: json\n  color: false\ngit:\n  binary: /usr/bin/git\n  timeout: 30s\nlog:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.False(t, cfg.Output.Color)
	assert.Equal(t, "/usr/bin/git", cfg.Git.Binary)
	assert.Equal(t, 30*time.Second, cfg.Git.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("DIFFLOC_OUTPUT_FORMAT", "table")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "table", cfg.Output.Format)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	base := func() *Config {
		return &Config{
			Output: OutputConfig{Format: "text", Color: true},
			Git:    GitConfig{Binary: "git"},
			Log:    LogConfig{Level: "info"},
		}
	}

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, base().Validate())
	})

	t.Run("bad format", func(t *testing.T) {
		t.Parallel()

		cfg := base()
		cfg.Output.Format = "csv"
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidFormat)
	})

	t.Run("negative timeout", func(t *testing.T) {
		t.Parallel()

		cfg := base()
		cfg.Git.Timeout = -time.Second
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidTimeout)
	})

	t.Run("empty binary", func(t *testing.T) {
		t.Parallel()

		cfg := base()
		cfg.Git.Binary = "  "
		assert.ErrorIs(t, cfg.Validate(), ErrEmptyGitBinary)
	})

	t.Run("bad level", func(t *testing.T) {
		t.Parallel()

		cfg := base()
		cfg.Log.Level = "loud"
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidLogLevel)
	})
}

func TestSlogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Config{Log: LogConfig{Level: tt.name}}
			level, err := cfg.SlogLevel()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}
