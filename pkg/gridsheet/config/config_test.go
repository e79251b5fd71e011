package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

func isolate(t *testing.T) {
	t.Helper()
	homedir.DisableCache = true
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("GRIDSHEET_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, models.Ascending, cfg.SortDirection)
	assert.Equal(t, ',', cfg.CSVComma)
	assert.False(t, cfg.CSVHeader)
	assert.Equal(t, "table", cfg.OutputFormat)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)

	opts := cfg.Options()
	assert.Equal(t, ',', opts.CSV.Comma)
	assert.Equal(t, models.Ascending, opts.SortDirection)
}

func TestConfigFileAndEnv(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	content := "sort:\n  direction: desc\ncsv:\n  comma: \";\"\n  header: true\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gridsheet.yaml"), []byte(content), 0o644))
	t.Setenv("GRIDSHEET_CONFIG_PATH", dir)
	t.Setenv("GRIDSHEET_OUTPUT_FORMAT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, models.Descending, cfg.SortDirection)
	assert.Equal(t, ';', cfg.CSVComma)
	assert.True(t, cfg.CSVHeader)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestHomeConfig(t *testing.T) {
	isolate(t)
	t.Setenv("GRIDSHEET_CONFIG_PATH", "")
	home, err := homedir.Dir()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(home, ".gridsheet.yaml"), []byte("output:\n  pretty: true\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.OutputPretty)
	assert.True(t, cfg.Options().Pretty)
}

func TestResolveRejectsBadValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{KeySortDirection, "sideways"},
		{KeyCSVComma, ",,"},
		{KeyCSVComma, "\""},
		{KeyLogLevel, "loud"},
	}
	for _, tt := range tests {
		v := New()
		v.Set(tt.key, tt.value)
		if _, err := Resolve(v); err == nil {
			t.Errorf("Resolve with %s=%q: expected error", tt.key, tt.value)
		}
	}
}
