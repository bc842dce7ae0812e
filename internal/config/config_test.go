package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
cms:
  base_url: "https://cms.example.com"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://cms.example.com", cfg.CMS.BaseURL)
	assert.Equal(t, 100, cfg.CMS.BatchSize)
	assert.Equal(t, 3, cfg.CMS.Retry.MaxAttempts)
	assert.Equal(t, time.Second, cfg.CMS.Retry.Delay)
	assert.Equal(t, 10*time.Minute, cfg.Sync.Interval)
	assert.Equal(t, 5*time.Minute, cfg.Sync.CycleTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EmptyBaseURLMeansLocalMode(t *testing.T) {
	path := writeConfig(t, `
log_level: "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.CMS.BaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_ExpandsEnvironment(t *testing.T) {
	t.Setenv("TEST_CMS_URL", "https://cms.internal")

	path := writeConfig(t, `
cms:
  base_url: "${TEST_CMS_URL}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://cms.internal", cfg.CMS.BaseURL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
