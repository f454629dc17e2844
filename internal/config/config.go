package config

import (
	"os"
	"strconv"
	"time"

	"jackpotiq/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Scraper ScraperConfig
}

// ServerConfig holds HTTP trigger server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// StorageConfig holds local data directory and cloud bucket settings
type StorageConfig struct {
	// DataDir is where the draw and stats JSON files live locally.
	DataDir string
	// Bucket is the cloud storage bucket the data directory syncs with.
	Bucket string
	// SyncEnabled disables the bucket sync entirely when false; runs then
	// work against local files only.
	SyncEnabled bool
}

// ScraperConfig holds lottery results scraping settings
type ScraperConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:  loadServerConfig(),
		Storage: loadStorageConfig(),
		Scraper: loadScraperConfig(),
	}
	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "release"),
	}
}

func loadStorageConfig() StorageConfig {
	return StorageConfig{
		DataDir:     getEnvOrDefault("DATA_DIR", "data"),
		Bucket:      getEnvOrDefault("LOTTERY_DATA_SCRAPER_BUCKET", "jackpot-iq"),
		SyncEnabled: getEnvBoolOrDefault("BUCKET_SYNC_ENABLED", true),
	}
}

func loadScraperConfig() ScraperConfig {
	return ScraperConfig{
		BaseURL:   getEnvOrDefault("RESULTS_BASE_URL", "https://www.lottery.net"),
		UserAgent: getEnvOrDefault("SCRAPER_USER_AGENT", "Mozilla/5.0 (compatible; Lottery-API/1.0)"),
		Timeout:   time.Duration(getEnvIntOrDefault("SCRAPER_TIMEOUT_SECONDS", 30)) * time.Second,
	}
}

func validateConfig(config *Config) error {
	if config.Storage.DataDir == "" {
		return errors.ConfigInvalid("data directory is required")
	}
	if config.Storage.SyncEnabled && config.Storage.Bucket == "" {
		return errors.ConfigInvalid("bucket is required when sync is enabled")
	}
	if config.Scraper.BaseURL == "" {
		return errors.ConfigInvalid("results base URL is required")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
