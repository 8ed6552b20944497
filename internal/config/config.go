package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	APIPort            string
	DBPath             string
	LLMBaseURL         string
	LLMModelName       string
	LLMAPIKey          string
	ImproveConcurrency int
	LogLevel           slog.Level
	LogFormat          string // "text" or "json"
}

// Load reads configuration from the environment, after merging the nearest
// .env file found in the working directory or up to five parents. Variables
// already set win over the file.
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{
		APIPort:      getEnv("API_PORT", "9000"),
		DBPath:       getEnv("DB_PATH", "./data/resume-studio.db"),
		LLMBaseURL:   getEnv("LLM_BASE_URL", "https://api.openai.com"),
		LLMModelName: getEnv("LLM_MODEL", "gpt-4o"),
		LLMAPIKey:    getEnv("LLM_API_KEY", ""),
		LogFormat:    strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	concurrency, err := strconv.Atoi(getEnv("IMPROVE_CONCURRENCY", "2"))
	if err != nil {
		return nil, fmt.Errorf("IMPROVE_CONCURRENCY must be a valid integer: %w", err)
	}
	if concurrency <= 0 {
		return nil, fmt.Errorf("IMPROVE_CONCURRENCY must be greater than 0")
	}
	cfg.ImproveConcurrency = concurrency

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error: %w", err)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	return cfg, nil
}

// NewLogger builds the process logger described by the config.
func (c *Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func loadDotEnv() {
	dir, err := os.Getwd()
	if err != nil {
		return
	}
	for n := 0; n < 6; n++ {
		path := filepath.Join(dir, ".env")
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
