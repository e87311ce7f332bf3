package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	yaml := `
catalog:
  base_url: http://localhost:9000/
  version: latest
  timeout: 5s
ui:
  page_size: 10
store:
  path: ""
`
	require.NoError(t, os.WriteFile(file, []byte(yaml), 0644))

	cfg, err := LoadConfig(file)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000", cfg.Catalog.BaseURL)
	assert.Equal(t, LatestVersion, cfg.Catalog.Version)
	assert.Equal(t, DefaultLocale, cfg.Catalog.Locale)
	assert.Equal(t, 5*time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, 10, cfg.UI.PageSize)
	assert.Equal(t, 0.5, cfg.UI.LoadMoreThreshold)
	assert.Empty(t, cfg.Store.Path)
	assert.Equal(t, "INFO", cfg.Logging.Level)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("ui:\n  page_size: 3\n"), 0644))

	t.Setenv("CHAMPDEX_CATALOG_VERSION", "14.1.1")
	t.Setenv("CHAMPDEX_UI_PAGE_SIZE", "7")

	cfg, err := LoadConfig(file)
	require.NoError(t, err)
	assert.Equal(t, "14.1.1", cfg.Catalog.Version)
	assert.Equal(t, 7, cfg.UI.PageSize)
}

func TestLoadConfig_BadFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("ui: [unterminated"), 0644))

	_, err := LoadConfig(file)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		pageSize  int
		threshold float64
		timeout   time.Duration
	}{
		{
			name:      "defaults untouched",
			mutate:    func(*Config) {},
			pageSize:  5,
			threshold: 0.5,
			timeout:   30 * time.Second,
		},
		{
			name: "zero page size",
			mutate: func(c *Config) {
				c.UI.PageSize = 0
			},
			pageSize:  1,
			threshold: 0.5,
			timeout:   30 * time.Second,
		},
		{
			name: "threshold out of range",
			mutate: func(c *Config) {
				c.UI.LoadMoreThreshold = 3
			},
			pageSize:  5,
			threshold: 0.5,
			timeout:   30 * time.Second,
		},
		{
			name: "negative timeout disables it",
			mutate: func(c *Config) {
				c.Catalog.Timeout = -time.Second
			},
			pageSize:  5,
			threshold: 0.5,
			timeout:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			cfg.Validate()
			assert.Equal(t, tt.pageSize, cfg.UI.PageSize)
			assert.Equal(t, tt.threshold, cfg.UI.LoadMoreThreshold)
			assert.Equal(t, tt.timeout, cfg.Catalog.Timeout)
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandHome("~/champdex/x.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "champdex", "x.db"), got)

	got, err = ExpandHome("/tmp/x.db")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", got)
}
