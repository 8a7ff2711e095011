package common

import (
	"encoding/json"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/joseph-ayodele/agent-insights/internal/entity"
)

// Config holds all application configuration.
type Config struct {
	Analysis entity.AnalysisConfig
	Ingest   IngestConfig
	Export   ExportConfig
	Logging  LoggingConfig
}

// IngestConfig holds loader-related configuration.
type IngestConfig struct {
	ChunkSize int // rows per chunk; 0 disables chunked reading
}

// ExportConfig holds report-output configuration.
type ExportConfig struct {
	OutputDir string
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// LoadConfig loads configuration from environment variables, reading a
// local .env file first when one exists.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	return &Config{
		Analysis: entity.AnalysisConfig{
			TargetYear:           getEnvAsInt("TARGET_YEAR", 2025),
			MinDepositsForActive: getEnvAsInt("MIN_DEPOSITS_FOR_ACTIVE", 20),
			DepositKeywords:      getEnvAsSlice("DEPOSIT_KEYWORDS", nil),
			TopN:                 getEnvAsInt("TOP_N", 10),
		}.WithDefaults(),
		Ingest: IngestConfig{
			ChunkSize: getEnvAsInt("CHUNK_SIZE", 0),
		},
		Export: ExportConfig{
			OutputDir: getEnv("OUTPUT_DIR", "./reports"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}
}

// LoadAnalysisConfigFile reads an analysis-config JSON file, validates it
// against the schema, and merges it over the current analysis settings.
func (c *Config) LoadAnalysisConfigFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return NewAppError("CONFIG_ERROR", "reading analysis config", err)
	}
	if err := ValidateAnalysisConfig(raw); err != nil {
		return NewAppError("CONFIG_ERROR", "invalid analysis config", err)
	}
	var overlay entity.AnalysisConfig
	if err := json.Unmarshal(raw, &overlay); err != nil {
		return NewAppError("CONFIG_ERROR", "decoding analysis config", err)
	}
	if overlay.TargetYear != 0 {
		c.Analysis.TargetYear = overlay.TargetYear
	}
	if overlay.MinDepositsForActive != 0 {
		c.Analysis.MinDepositsForActive = overlay.MinDepositsForActive
	}
	if len(overlay.DepositKeywords) > 0 {
		c.Analysis.DepositKeywords = overlay.DepositKeywords
	}
	if overlay.TopN != 0 {
		c.Analysis.TopN = overlay.TopN
	}
	return nil
}

// Validate validates the loaded configuration.
func (c *Config) Validate() error {
	if c.Analysis.TargetYear < 1970 || c.Analysis.TargetYear > 9999 {
		return NewAppError("CONFIG_ERROR", "TARGET_YEAR must be a four-digit year", ErrInvalidInput)
	}
	if c.Analysis.MinDepositsForActive < 1 {
		return NewAppError("CONFIG_ERROR", "MIN_DEPOSITS_FOR_ACTIVE must be positive", ErrInvalidInput)
	}
	if c.Analysis.TopN < 1 {
		return NewAppError("CONFIG_ERROR", "TOP_N must be positive", ErrInvalidInput)
	}
	if c.Ingest.ChunkSize < 0 {
		return NewAppError("CONFIG_ERROR", "CHUNK_SIZE cannot be negative", ErrInvalidInput)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		result := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}
