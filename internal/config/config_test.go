package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
	return dir
}

func TestLoadFrom_Defaults(t *testing.T) {
	dir := writeConfig(t, `
steam:
  owner_id: "76561198076702509"
  app_ids: [2923300, 2977660]
`)

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "https://steamcommunity.com", cfg.Steam.BaseURL)
	assert.Equal(t, []int64{2923300, 2977660}, cfg.Steam.AppIDs)
	assert.Equal(t, 2, cfg.Steam.ContextID)
	assert.Equal(t, "russian", cfg.Steam.Language)
	assert.Equal(t, 1000, cfg.Steam.PageSize)
	assert.Equal(t, 100, cfg.Steam.SinglePageSize)
	assert.Equal(t, 10*time.Second, cfg.Steam.RequestDelay)
	assert.Equal(t, ModeTabs, cfg.Report.Mode)
	assert.Equal(t, "inventory.html", cfg.Report.Output)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFrom_Overrides(t *testing.T) {
	dir := writeConfig(t, `
steam:
  owner_id: "76561198076702509"
  app_ids: [2923300]
  request_delay: 250ms
  page_size: 50
report:
  mode: single
  output: out/report.html
  lang: en
log:
  level: debug
  format: json
`)

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.Steam.RequestDelay)
	assert.Equal(t, 50, cfg.Steam.PageSize)
	assert.Equal(t, ModeSingle, cfg.Report.Mode)
	assert.Equal(t, "out/report.html", cfg.Report.Output)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFrom_TabsWithoutAppIDs(t *testing.T) {
	dir := writeConfig(t, `
steam:
  owner_id: "76561198076702509"
`)

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, ModeTabs, cfg.Report.Mode)
	assert.Empty(t, cfg.Steam.AppIDs)
}

func TestLoadFrom_MissingFile(t *testing.T) {
	_, err := LoadFrom(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml file not found")
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "missing owner",
			body: "steam:\n  app_ids: [1]\n",
			want: "OwnerID",
		},
		{
			name: "non-numeric owner",
			body: "steam:\n  owner_id: abc\n  app_ids: [1]\n",
			want: "OwnerID",
		},
		{
			name: "single mode without app ids",
			body: "steam:\n  owner_id: \"1\"\nreport:\n  mode: single\n",
			want: "exactly one app id",
		},
		{
			name: "non-positive app id",
			body: "steam:\n  owner_id: \"1\"\n  app_ids: [0]\n",
			want: "AppIDs",
		},
		{
			name: "unknown mode",
			body: "steam:\n  owner_id: \"1\"\n  app_ids: [1]\nreport:\n  mode: grid\n",
			want: "Mode",
		},
		{
			name: "single mode with several apps",
			body: "steam:\n  owner_id: \"1\"\n  app_ids: [1, 2]\nreport:\n  mode: single\n",
			want: "exactly one app id",
		},
		{
			name: "bad language tag",
			body: "steam:\n  owner_id: \"1\"\n  app_ids: [1]\nreport:\n  lang: \"not a tag!\"\n",
			want: "report.lang",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
