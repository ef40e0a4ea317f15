package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()
	return &cfg
}

func TestValidateDeep_ValidConfig(t *testing.T) {
	cfg := validConfig(t)
	assert.NoError(t, cfg.ValidateDeep(""))
	assert.Empty(t, cfg.Warnings())
}

func TestValidateDeep_FieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{name: "ftp base url", mutate: func(c *Config) { c.API.BaseURL = "ftp://example.com" }, field: "api.base_url"},
		{name: "missing host", mutate: func(c *Config) { c.API.BaseURL = "http://" }, field: "api.base_url"},
		{name: "unparseable url", mutate: func(c *Config) { c.API.BaseURL = "http://[::1" }, field: "api.base_url"},
		{name: "unknown theme", mutate: func(c *Config) { c.TUI.Theme = "solarized" }, field: "tui.theme"},
		{name: "negative search delay", mutate: func(c *Config) { c.List.SearchDelay = -time.Second }, field: "list.search_delay"},
		{name: "negative scroll delay", mutate: func(c *Config) { c.List.ScrollDelay = -time.Second }, field: "list.scroll_delay"},
		{name: "huge row height", mutate: func(c *Config) { c.List.RowHeight = 41 }, field: "list.row_height"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)

			err := cfg.ValidateDeep("")

			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			require.Len(t, fieldErrs, 1)
			assert.Equal(t, tt.field, fieldErrs[0].Field)
		})
	}
}

func TestValidateDeep_StructuralErrorFirst(t *testing.T) {
	cfg := validConfig(t)
	cfg.List.PageSize = 0
	cfg.TUI.Theme = "solarized"

	err := cfg.ValidateDeep("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list.page_size")
}

func TestValidateDeep_ConfigFile(t *testing.T) {
	cfg := validConfig(t)

	assert.NoError(t, cfg.ValidateDeep(filepath.Join(t.TempDir(), "missing.yaml")))

	err := cfg.ValidateDeep(t.TempDir())
	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "config_file", fieldErrs[0].Field)
	assert.Contains(t, fieldErrs[0].Err.Error(), "is a directory")
}

func TestValidateDeep_DataDirIsFile(t *testing.T) {
	cfg := validConfig(t)
	file := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	cfg.DataDir = file

	err := cfg.ValidateDeep("")
	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "data_dir", fieldErrs[0].Field)
}

func TestWarnings(t *testing.T) {
	cfg := validConfig(t)
	cfg.List.SearchDelay = 20 * time.Millisecond
	cfg.List.PageSize = 1000
	cfg.List.RowHeight = 2

	warnings := cfg.Warnings()
	require.Len(t, warnings, 3)

	items := make([]string, 0, len(warnings))
	for _, w := range warnings {
		assert.Equal(t, "List", w.Category)
		items = append(items, w.Item)
	}
	assert.Equal(t, []string{"search_delay", "page_size", "row_height"}, items)
}
