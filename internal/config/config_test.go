package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Output)
	assert.Equal(t, "output.xlsx", cfg.Processing.OutputPath)
	assert.Equal(t, "Summary", cfg.Processing.SummarySheet)
	assert.Equal(t, "Cross-Platform", cfg.Processing.CrossPlatformSheet)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SALES_LOGGING_LEVEL", "debug")
	t.Setenv("SALES_PROCESSING_OUTPUT_PATH", "totals.xlsx")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "totals.xlsx", cfg.Processing.OutputPath)
}

func TestLoad_FileOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("logging:\n  level: warn\nprocessing:\n  summary_sheet: Overview\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "Overview", cfg.Processing.SummarySheet)
	// Untouched fields keep their defaults.
	assert.Equal(t, "output.xlsx", cfg.Processing.OutputPath)
}

func TestLoad_MissingFileIgnored(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "output.xlsx", cfg.Processing.OutputPath)
}

func TestLoad_InvalidLevelRejected(t *testing.T) {
	t.Setenv("SALES_LOGGING_LEVEL", "chatty")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "output.xlsx", cfg.Processing.OutputPath)
	assert.Equal(t, "Cross-Platform", cfg.Processing.CrossPlatformSheet)
}
