package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "player-data", cfg.Storage.Bucket)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "inner", cfg.Pipeline.JoinMode)
	assert.Equal(t, 25, cfg.Pipeline.BatchSize)
	assert.Equal(t, "registry/players.json", cfg.Pipeline.RegistryObject)
	assert.Equal(t, []string{"superflex", "one_qb_dynasty", "redraft"}, cfg.Pipeline.Formats)
	assert.Equal(t, "https://api.fantasycalc.com", cfg.Valuation.BaseURL)
	assert.True(t, cfg.Valuation.Dynasty)
	assert.Equal(t, 2, cfg.Valuation.NumQBs)
	assert.Equal(t, float64(1), cfg.Valuation.PPR)
	assert.Equal(t, 12, cfg.Valuation.NumTeams)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PIPELINE_JOIN_MODE", "left")
	t.Setenv("PIPELINE_BATCH_SIZE", "100")
	t.Setenv("PIPELINE_FORMATS", "redraft")
	t.Setenv("VALUATION_NUM_QBS", "1")
	t.Setenv("DATABASE_DRIVER", "sqlite")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "left", cfg.Pipeline.JoinMode)
	assert.Equal(t, 100, cfg.Pipeline.BatchSize)
	assert.Equal(t, []string{"redraft"}, cfg.Pipeline.Formats)
	assert.Equal(t, 1, cfg.Valuation.NumQBs)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}

func TestLoadConfig_Files(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("pipeline:\n  batch_size: 10\nvaluation:\n  ppr: 0.5\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_API_KEY=from-dotenv\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("SERVER_API_KEY") })

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Pipeline.BatchSize)
	assert.Equal(t, 0.5, cfg.Valuation.PPR)
	assert.Equal(t, "from-dotenv", cfg.Server.ApiKey)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		env   string
		value string
	}{
		{"PIPELINE_JOIN_MODE", "outer"},
		{"PIPELINE_BATCH_SIZE", "0"},
		{"PIPELINE_FORMATS", "half_ppr"},
		{"DATABASE_DRIVER", "postgres"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)
			_, err := LoadConfig(t.TempDir())
			assert.Error(t, err)
		})
	}
}
