package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "git", cfg.Repo.GitBin)
	assert.Positive(t, cfg.Repo.Timeout)
	assert.Positive(t, cfg.Repo.PoolSize)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("GITQ_GIT_BIN", "/opt/git/bin/git")
	t.Setenv("GITQ_TIMEOUT", "5s")
	t.Setenv("GITQ_LOG_LEVEL", "debug")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "/opt/git/bin/git", cfg.Repo.GitBin)
	assert.Equal(t, 5*time.Second, cfg.Repo.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := "repo:\n  git_bin: /custom/git\n  pool_size: 2\nlog:\n  level: warn\n  pretty: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/custom/git", cfg.Repo.GitBin)
	assert.Equal(t, 2, cfg.Repo.PoolSize)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/config.yml")
	require.Error(t, err)
}

func TestLoadConfigRejectsNegativeTimeout(t *testing.T) {
	t.Setenv("GITQ_TIMEOUT", "-1s")

	_, err := LoadConfig("")
	require.Error(t, err)
}
