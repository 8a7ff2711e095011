package common_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/agent-insights/internal/common"
	"github.com/joseph-ayodele/agent-insights/internal/entity"
)

func baseConfig() *common.Config {
	return &common.Config{
		Analysis: entity.DefaultAnalysisConfig(2025),
		Export:   common.ExportConfig{OutputDir: "./reports"},
		Logging:  common.LoggingConfig{Level: "info", Format: "json"},
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("TARGET_YEAR", "2024")
	t.Setenv("MIN_DEPOSITS_FOR_ACTIVE", "5")
	t.Setenv("DEPOSIT_KEYWORDS", "TOPUP, RECHARGE")
	t.Setenv("TOP_N", "3")
	t.Setenv("CHUNK_SIZE", "5000")

	cfg := common.LoadConfig()

	assert.Equal(t, 2024, cfg.Analysis.TargetYear)
	assert.Equal(t, 5, cfg.Analysis.MinDepositsForActive)
	assert.Equal(t, []string{"TOPUP", "RECHARGE"}, cfg.Analysis.DepositKeywords)
	assert.Equal(t, 3, cfg.Analysis.TopN)
	assert.Equal(t, 5000, cfg.Ingest.ChunkSize)
}

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"TARGET_YEAR", "MIN_DEPOSITS_FOR_ACTIVE", "DEPOSIT_KEYWORDS", "TOP_N", "CHUNK_SIZE", "OUTPUT_DIR"} {
		t.Setenv(key, "")
	}

	cfg := common.LoadConfig()

	assert.Equal(t, 2025, cfg.Analysis.TargetYear)
	assert.Equal(t, 20, cfg.Analysis.MinDepositsForActive)
	assert.Equal(t, 10, cfg.Analysis.TopN)
	assert.NotEmpty(t, cfg.Analysis.DepositKeywords)
	assert.Zero(t, cfg.Ingest.ChunkSize)
	assert.Equal(t, "./reports", cfg.Export.OutputDir)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *common.Config)
		wantErr bool
	}{
		{"valid defaults", func(cfg *common.Config) {}, false},
		{"year too small", func(cfg *common.Config) { cfg.Analysis.TargetYear = 1900 }, true},
		{"year too large", func(cfg *common.Config) { cfg.Analysis.TargetYear = 10000 }, true},
		{"zero threshold", func(cfg *common.Config) { cfg.Analysis.MinDepositsForActive = 0 }, true},
		{"zero top-n", func(cfg *common.Config) { cfg.Analysis.TopN = 0 }, true},
		{"negative chunk size", func(cfg *common.Config) { cfg.Ingest.ChunkSize = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadAnalysisConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "analysis.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"target_year": 2023,
		"min_deposits_for_active": 10,
		"deposit_keywords": ["TOPUP"],
		"top_n": 5
	}`), 0o644))

	cfg := baseConfig()
	require.NoError(t, cfg.LoadAnalysisConfigFile(path))

	assert.Equal(t, 2023, cfg.Analysis.TargetYear)
	assert.Equal(t, 10, cfg.Analysis.MinDepositsForActive)
	assert.Equal(t, []string{"TOPUP"}, cfg.Analysis.DepositKeywords)
	assert.Equal(t, 5, cfg.Analysis.TopN)
}

func TestLoadAnalysisConfigFile_PartialOverlayKeepsRest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "analysis.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"top_n": 7}`), 0o644))

	cfg := baseConfig()
	require.NoError(t, cfg.LoadAnalysisConfigFile(path))

	assert.Equal(t, 7, cfg.Analysis.TopN)
	assert.Equal(t, 2025, cfg.Analysis.TargetYear)
	assert.Equal(t, 20, cfg.Analysis.MinDepositsForActive)
}

func TestLoadAnalysisConfigFile_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		cfg := baseConfig()
		err := cfg.LoadAnalysisConfigFile(filepath.Join(dir, "nope.json"))
		assert.Error(t, err)
	})

	t.Run("schema violation", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"target_year": "twenty"}`), 0o644))
		cfg := baseConfig()
		err := cfg.LoadAnalysisConfigFile(path)
		require.Error(t, err)
		var appErr *common.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "CONFIG_ERROR", appErr.Code)
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		path := filepath.Join(dir, "extra.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"target_yr": 2025}`), 0o644))
		cfg := baseConfig()
		assert.Error(t, cfg.LoadAnalysisConfigFile(path))
	})
}
